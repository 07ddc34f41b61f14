// Package service implements the mailbox that stores, prices and reports mail.
package service

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/guttosm/postbox/internal/domain/model"
	"github.com/guttosm/postbox/internal/i18n"
	"github.com/guttosm/postbox/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultCapacity is the capacity used when a box is created with a non-positive one.
const DefaultCapacity = 30

// Option configures a Box.
type Option func(*Box)

// Box is a fixed capacity mailbox. Mail is kept in insertion order and is
// never removed. Reports and diagnostics are written to the box output.
type Box struct {
	id         string
	capacity   int
	mails      []model.Mail
	out        io.Writer
	logger     zerolog.Logger
	translator *i18n.Translator
	locale     string
}

// NewBox creates an empty Box holding at most capacity mails.
func NewBox(capacity int, opts ...Option) *Box {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	b := &Box{
		id:         uuid.New().String(),
		capacity:   capacity,
		mails:      make([]model.Mail, 0, capacity),
		out:        os.Stdout,
		logger:     log.Logger,
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.logger = b.logger.With().Str("box_id", b.id).Int("capacity", b.capacity).Logger()
	metrics.UpdateMailboxMetrics(0, b.capacity)
	return b
}

// WithOutput sets the writer receiving reports and diagnostics.
func WithOutput(w io.Writer) Option {
	return func(b *Box) {
		if w != nil {
			b.out = w
		}
	}
}

// WithLogger sets the structured logger of the box.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Box) {
		b.logger = logger
	}
}

// WithLocale sets the report language. Unsupported locales fall back to English.
func WithLocale(locale string) Option {
	return func(b *Box) {
		b.locale = i18n.NormalizeLocale(locale)
	}
}

// WithTranslator allows injecting a custom translator.
func WithTranslator(t *i18n.Translator) Option {
	return func(b *Box) {
		if t != nil {
			b.translator = t
		}
	}
}

// ID returns the identifier used to correlate the box logs.
func (b *Box) ID() string { return b.id }

// Capacity returns the maximum number of mails the box can hold.
func (b *Box) Capacity() int { return b.capacity }

// Len returns the number of stored mails.
func (b *Box) Len() int { return len(b.mails) }

// Items returns a copy of the stored mails in insertion order.
func (b *Box) Items() []model.Mail {
	items := make([]model.Mail, len(b.mails))
	copy(items, b.mails)
	return items
}

// AddMail stores mail if the box has room and the mail is valid. Rejected
// mail is dropped and a diagnostic is written to the box output.
func (b *Box) AddMail(mail model.Mail) {
	if len(b.mails) < b.capacity && mail != nil && mail.IsValid() {
		b.mails = append(b.mails, mail)
		metrics.RecordInsertion(string(mail.Kind()), metrics.ResultAccepted)
		metrics.UpdateMailboxMetrics(len(b.mails), b.capacity)
		b.logger.Debug().
			Str("kind", string(mail.Kind())).
			Int("size", len(b.mails)).
			Msg("mail added")
		return
	}

	reason := metrics.ResultInvalidDestination
	if len(b.mails) >= b.capacity {
		reason = metrics.ResultCapacityExceeded
	}
	kind := "unknown"
	if mail != nil {
		kind = string(mail.Kind())
	}

	metrics.RecordInsertion(kind, reason)
	b.logger.Warn().
		Str("kind", kind).
		Str("reason", reason).
		Int("size", len(b.mails)).
		Msg("mail rejected")
	b.println(b.translator.Translate(i18n.KeyMailRejected, b.locale))
}

// Stamp returns the total postage of the valid mails in the box.
func (b *Box) Stamp() float64 {
	var total float64
	for _, mail := range b.mails {
		if mail.IsValid() {
			amount := mail.CalculateStampAmount()
			metrics.RecordStamp(string(mail.Kind()), amount)
			total += amount
		} else {
			// Unreachable through AddMail.
			b.println(b.translator.Format(i18n.KeyInvalidCourier, b.locale, b.kindLabel(mail)))
		}
	}

	metrics.UpdatePostage(total)
	b.logger.Info().
		Float64("total_chf", total).
		Int("size", len(b.mails)).
		Msg("box stamped")
	return total
}

// Display writes one block per stored mail, each followed by a blank line.
func (b *Box) Display() {
	for _, mail := range b.mails {
		b.println(b.kindLabel(mail))
		b.println(b.translator.Format(i18n.KeyWeight, b.locale, model.FormatAmount(mail.Weight())))
		b.println(b.translator.Format(i18n.KeyExpress, b.locale, b.yesNo(mail.Express())))
		b.println(b.translator.Format(i18n.KeyDestination, b.locale, mail.Destination()))

		price := "0.0"
		if mail.IsValid() {
			price = model.FormatAmount(mail.CalculateStampAmount())
		}
		b.println(b.translator.Format(i18n.KeyPrice, b.locale, price))

		if detail, ok := mail.Detail(); ok {
			b.println(b.detailLine(detail))
		}
		b.println("")
	}
}

// CountInvalid returns the number of stored mails without a destination.
// AddMail never stores such mail, so this is zero for boxes filled through it.
func (b *Box) CountInvalid() int {
	count := 0
	for _, mail := range b.mails {
		if !mail.IsValid() {
			count++
		}
	}
	return count
}

// TotalLine renders the total postage report line.
func (b *Box) TotalLine(total float64) string {
	return b.translator.Format(i18n.KeyTotalPostage, b.locale, model.FormatAmount(total))
}

// InvalidLine renders the invalid mail count report line.
func (b *Box) InvalidLine(count int) string {
	return b.translator.Format(i18n.KeyInvalidCount, b.locale, count)
}

func (b *Box) kindLabel(mail model.Mail) string {
	return b.translator.Translate(i18n.KindKey(string(mail.Kind())), b.locale)
}

func (b *Box) yesNo(v bool) string {
	if v {
		return b.translator.Translate(i18n.KeyYes, b.locale)
	}
	return b.translator.Translate(i18n.KeyNo, b.locale)
}

func (b *Box) detailLine(d model.Detail) string {
	line := b.translator.Translate(i18n.DetailKey(d.Label), b.locale) + ": " + d.Value
	if d.Unit != "" {
		line += " " + b.translator.Translate(i18n.DetailKey(d.Unit), b.locale)
	}
	return line
}

func (b *Box) println(line string) {
	if _, err := fmt.Fprintln(b.out, line); err != nil {
		b.logger.Error().Err(err).Msg("failed to write box output")
	}
}
