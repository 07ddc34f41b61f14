// Package model defines the core domain entities for the postbox.
package model

import "strconv"

// Kind identifies a mail variant.
type Kind string

const (
	KindLetter        Kind = "Letter"
	KindParcel        Kind = "Parcel"
	KindAdvertisement Kind = "Advertisement"
)

// Pricing constants, in CHF unless noted.
const (
	// LetterFormatA4 is the only letter format that gets the reduced base fare.
	LetterFormatA4 = "A4"
	// A4BaseFare is the base fare of an A4 letter.
	A4BaseFare = 2.50
	// DefaultBaseFare applies to every other letter format, A3 included.
	DefaultBaseFare = 3.50
	// ParcelVolumeRate is charged per liter of parcel volume.
	ParcelVolumeRate = 0.25
	// AdvertisementRate is charged per kilogram of advertisement.
	AdvertisementRate = 5.0
	// ExpressMultiplier is applied to the whole amount of express mail.
	ExpressMultiplier = 2.0

	GramsPerKilogram    = 1000.0
	LitersPerCubicMeter = 1000.0
)

// Mail is implemented by every item that can be posted in a box.
type Mail interface {
	Kind() Kind
	// Weight is expressed in grams.
	Weight() float64
	Express() bool
	Destination() string
	// IsValid reports whether the mail has a destination.
	IsValid() bool
	// CalculateStampAmount returns the postage in CHF, whether or not the mail is valid.
	CalculateStampAmount() float64
	// Detail returns the variant specific report field, if the variant has one.
	Detail() (Detail, bool)
}

// Detail is a labelled value shown after the common fields of a mail.
// Label and Unit are short names that reports translate, e.g. "volume" and "cubic_meters".
type Detail struct {
	Label string
	Value string
	Unit  string
}

// envelope holds the attributes shared by all mail variants.
type envelope struct {
	weight      float64
	express     bool
	destination string
}

func (e envelope) Weight() float64 { return e.weight }
func (e envelope) Express() bool { return e.express }
func (e envelope) Destination() string { return e.destination }

// IsValid reports whether the destination is set. No trimming is done.
func (e envelope) IsValid() bool { return e.destination != "" }

func (e envelope) kilograms() float64 { return e.weight / GramsPerKilogram }

func (e envelope) withExpress(amount float64) float64 {
	if e.express {
		return amount * ExpressMultiplier
	}
	return amount
}

// Letter is a mail item with a paper format such as "A4".
type Letter struct {
	envelope
	format string
}

// NewLetter creates a letter. The destination is not validated.
func NewLetter(weight float64, express bool, destination, format string) Letter {
	return Letter{
		envelope: envelope{weight: weight, express: express, destination: destination},
		format:   format,
	}
}

func (l Letter) Kind() Kind { return KindLetter }
func (l Letter) Format() string { return l.format }

// CalculateStampAmount returns the base fare plus one CHF per kilogram.
func (l Letter) CalculateStampAmount() float64 {
	baseFare := DefaultBaseFare
	if l.format == LetterFormatA4 {
		baseFare = A4BaseFare
	}
	return l.withExpress(baseFare + l.kilograms())
}

func (l Letter) Detail() (Detail, bool) {
	return Detail{Label: "format", Value: l.format}, true
}

// Parcel is a mail item with a volume in liters.
type Parcel struct {
	envelope
	volume float64
}

// NewParcel creates a parcel. The destination is not validated.
func NewParcel(weight float64, express bool, destination string, volume float64) Parcel {
	return Parcel{
		envelope: envelope{weight: weight, express: express, destination: destination},
		volume:   volume,
	}
}

func (p Parcel) Kind() Kind { return KindParcel }
func (p Parcel) Volume() float64 { return p.volume }

// CalculateStampAmount charges the volume rate per liter plus one CHF per kilogram.
func (p Parcel) CalculateStampAmount() float64 {
	return p.withExpress(ParcelVolumeRate*p.volume + p.kilograms())
}

// Detail reports the volume converted to cubic meters.
func (p Parcel) Detail() (Detail, bool) {
	return Detail{
		Label: "volume",
		Value: FormatAmount(p.volume / LitersPerCubicMeter),
		Unit:  "cubic_meters",
	}, true
}

// Advertisement is a mail item priced on weight only.
type Advertisement struct {
	envelope
}

// NewAdvertisement creates an advertisement. The destination is not validated.
func NewAdvertisement(weight float64, express bool, destination string) Advertisement {
	return Advertisement{
		envelope: envelope{weight: weight, express: express, destination: destination},
	}
}

func (a Advertisement) Kind() Kind { return KindAdvertisement }

func (a Advertisement) CalculateStampAmount() float64 {
	return a.withExpress(AdvertisementRate * a.weight / GramsPerKilogram)
}

func (a Advertisement) Detail() (Detail, bool) { return Detail{}, false }

// FormatAmount renders a number in its shortest round-trip form, e.g. 200, 7.4 or 0.03.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
