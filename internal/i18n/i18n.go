// Package i18n provides internationalization support for the postbox reports.
// It handles translation of report lines and box diagnostics.
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Format translates key and formats it with args.
func (t *Translator) Format(key, locale string, args ...any) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// NormalizeLocale reduces a locale such as "fr-CH" or "de_CH.UTF-8" to a
// supported base language, or DefaultLocale when unsupported.
func NormalizeLocale(locale string) string {
	lang := strings.TrimSpace(locale)
	if idx := strings.IndexAny(lang, "-_."); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if _, ok := getDefaultMessages()[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"report.total_postage": "The total amount of postage is %s CHF",
			"report.invalid_count": "The box contains %d invalid mails",
			"report.weight":        "Weight: %s grams",
			"report.express":       "Express: %s",
			"report.destination":   "Destination: %s",
			"report.price":         "Price: %s CHF",
			"report.yes":           "yes",
			"report.no":            "no",

			"box.mail_rejected":   "Mailbox is full or mail is invalid. Cannot add more mails.",
			"box.invalid_courier": "%s (Invalid courier)",

			"kind.Letter":        "Letter",
			"kind.Parcel":        "Parcel",
			"kind.Advertisement": "Advertisement",

			"detail.format":       "Format",
			"detail.volume":       "Volume",
			"detail.cubic_meters": "cubic meters",
		},
		"fr": {
			"report.total_postage": "Le montant total de l'affranchissement est de %s CHF",
			"report.invalid_count": "La boîte contient %d envois invalides",
			"report.weight":        "Poids: %s grammes",
			"report.express":       "Express: %s",
			"report.destination":   "Destination: %s",
			"report.price":         "Prix: %s CHF",
			"report.yes":           "oui",
			"report.no":            "non",

			"box.mail_rejected":   "La boîte est pleine ou l'envoi est invalide. Impossible d'ajouter l'envoi.",
			"box.invalid_courier": "%s (Courrier invalide)",

			"kind.Letter":        "Lettre",
			"kind.Parcel":        "Colis",
			"kind.Advertisement": "Publicité",

			"detail.format":       "Format",
			"detail.volume":       "Volume",
			"detail.cubic_meters": "mètres cubes",
		},
		"de": {
			"report.total_postage": "Der Gesamtbetrag des Portos beträgt %s CHF",
			"report.invalid_count": "Die Box enthält %d ungültige Sendungen",
			"report.weight":        "Gewicht: %s Gramm",
			"report.express":       "Express: %s",
			"report.destination":   "Zieladresse: %s",
			"report.price":         "Preis: %s CHF",
			"report.yes":           "ja",
			"report.no":            "nein",

			"box.mail_rejected":   "Die Box ist voll oder die Sendung ist ungültig. Sendung kann nicht hinzugefügt werden.",
			"box.invalid_courier": "%s (Ungültige Sendung)",

			"kind.Letter":        "Brief",
			"kind.Parcel":        "Paket",
			"kind.Advertisement": "Werbung",

			"detail.format":       "Format",
			"detail.volume":       "Volumen",
			"detail.cubic_meters": "Kubikmeter",
		},
	}
}
