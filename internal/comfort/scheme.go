// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package comfort

// Scheme holds the band boundaries in degrees Celsius and the colour of each band. A Scheme is
// a value and is never modified after creation.
type Scheme struct {
	// ColdBelow is the exclusive upper bound of Cold.
	ColdBelow float64
	// CoolBelow is the exclusive upper bound of Cool.
	CoolBelow float64
	// ComfortableUpTo is the inclusive upper bound of Comfortable.
	ComfortableUpTo float64
	// WarmBelow is the exclusive upper bound of Warm; everything from here on is Hot.
	WarmBelow float64

	Colors [NumBands]string
}

// DefaultScheme returns the ASHRAE-inspired scheme with a comfortable range of 18-25°C.
func DefaultScheme() Scheme {
	return Scheme{
		ColdBelow:       10,
		CoolBelow:       18,
		ComfortableUpTo: 25,
		WarmBelow:       30,
		Colors:          [NumBands]string{"#1A07F0", "#6593F0", "#3DE03D", "#FFA07ADC", "#FF4400C6"},
	}
}

// Classify maps a temperature to its band. The first matching interval wins.
func (s Scheme) Classify(temp float64) Band {
	switch {
	case temp < s.ColdBelow:
		return Cold
	case temp < s.CoolBelow:
		return Cool
	case temp <= s.ComfortableUpTo:
		return Comfortable
	case temp < s.WarmBelow:
		return Warm
	default:
		return Hot
	}
}

// Color returns the display colour of a band.
func (s Scheme) Color(b Band) string {
	if !b.Valid() {
		return ""
	}
	return s.Colors[b]
}

// Classify maps a temperature to its band using the default scheme.
func Classify(temp float64) Band {
	return DefaultScheme().Classify(temp)
}
