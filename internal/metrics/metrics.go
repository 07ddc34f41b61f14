// Package metrics provides Prometheus metrics collection for the postbox.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Insertion results.
const (
	ResultAccepted           = "accepted"
	ResultCapacityExceeded   = "capacity_exceeded"
	ResultInvalidDestination = "invalid_destination"
)

var (
	// MailInsertionsTotal tracks mail insertion attempts by kind and result.
	MailInsertionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_insertions_total",
			Help: "Total number of mail insertion attempts",
		},
		[]string{"kind", "result"},
	)

	// MailStampAmount tracks the postage of stamped mail in CHF.
	MailStampAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_stamp_amount_chf",
			Help:    "Postage of stamped mail items in CHF",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100},
		},
		[]string{"kind"},
	)

	// MailboxPostage tracks the last computed postage total of a box.
	MailboxPostage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mailbox_postage_chf",
			Help: "Total postage of the last stamped mailbox in CHF",
		},
	)

	// MailboxItems tracks the number of items stored in a box.
	MailboxItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mailbox_items",
			Help: "Current number of mail items in the mailbox",
		},
	)

	// MailboxCapacity tracks the capacity of a box.
	MailboxCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mailbox_capacity",
			Help: "Mailbox capacity",
		},
	)
)

// RecordInsertion records the outcome of a mail insertion.
func RecordInsertion(kind, result string) {
	MailInsertionsTotal.WithLabelValues(kind, result).Inc()
}

// RecordStamp records the postage of a single stamped mail.
func RecordStamp(kind string, amount float64) {
	MailStampAmount.WithLabelValues(kind).Observe(amount)
}

// UpdateMailboxMetrics updates mailbox size and capacity metrics.
func UpdateMailboxMetrics(size, capacity int) {
	MailboxItems.Set(float64(size))
	MailboxCapacity.Set(float64(capacity))
}

// UpdatePostage records the postage total of a box.
func UpdatePostage(total float64) {
	MailboxPostage.Set(total)
}
