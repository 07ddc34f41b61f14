//go:build !integration

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.Same(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      KeyMailRejected,
			locale:   "en",
			expected: "Mailbox is full or mail is invalid. Cannot add more mails.",
		},
		{
			name:     "french message",
			key:      KeyYes,
			locale:   "fr",
			expected: "oui",
		},
		{
			name:     "german message",
			key:      KindKey("Parcel"),
			locale:   "de",
			expected: "Paket",
		},
		{
			name:     "empty locale defaults to english",
			key:      DetailKey("cubic_meters"),
			locale:   "",
			expected: "cubic meters",
		},
		{
			name:     "unsupported locale falls back to english",
			key:      KeyNo,
			locale:   "it",
			expected: "no",
		},
		{
			name:     "unknown key returns key",
			key:      "unknown.key",
			locale:   "en",
			expected: "unknown.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_Format(t *testing.T) {
	translator := NewTranslator()

	assert.Equal(t, "The total amount of postage is 88.4 CHF", translator.Format(KeyTotalPostage, "en", "88.4"))
	assert.Equal(t, "The box contains 0 invalid mails", translator.Format(KeyInvalidCount, "en", 0))
	assert.Equal(t, "Parcel (Invalid courier)", translator.Format(KeyInvalidCourier, "en", "Parcel"))
	assert.Equal(t, "Preis: 7.4 CHF", translator.Format(KeyPrice, "de", "7.4"))
}

func TestTranslator_LocalesShareKeys(t *testing.T) {
	messages := getDefaultMessages()
	for key := range messages[DefaultLocale] {
		for locale, localeMessages := range messages {
			_, ok := localeMessages[key]
			assert.True(t, ok, "locale %s is missing key %s", locale, key)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		expected string
	}{
		{name: "empty returns default", locale: "", expected: DefaultLocale},
		{name: "english", locale: "en", expected: "en"},
		{name: "region suffix", locale: "fr-CH", expected: "fr"},
		{name: "posix style", locale: "de_CH.UTF-8", expected: "de"},
		{name: "case insensitive", locale: "FR", expected: "fr"},
		{name: "unsupported language defaults", locale: "it", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLocale(tt.locale))
		})
	}
}
