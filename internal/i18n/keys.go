// Package i18n provides internationalization support for the postbox reports.
package i18n

// Report line translation keys. Values are fmt templates.
const (
	// KeyTotalPostage renders the total postage line.
	KeyTotalPostage = "report.total_postage"
	// KeyInvalidCount renders the invalid mail count line.
	KeyInvalidCount = "report.invalid_count"
	// KeyWeight renders the weight line of a mail block.
	KeyWeight = "report.weight"
	// KeyExpress renders the express line of a mail block.
	KeyExpress = "report.express"
	// KeyDestination renders the destination line of a mail block.
	KeyDestination = "report.destination"
	// KeyPrice renders the price line of a mail block.
	KeyPrice = "report.price"
	KeyYes   = "report.yes"
	KeyNo    = "report.no"
)

// Diagnostic message keys.
const (
	// KeyMailRejected is emitted when a mail is refused by a box.
	// Full boxes and invalid mail share the same message.
	KeyMailRejected = "box.mail_rejected"
	// KeyInvalidCourier is emitted when an invalid stored mail is skipped while stamping.
	KeyInvalidCourier = "box.invalid_courier"
)

// KindKey returns the translation key of a mail kind label.
func KindKey(kind string) string {
	return "kind." + kind
}

// DetailKey returns the translation key of a detail label or unit.
func DetailKey(name string) string {
	return "detail." + name
}
