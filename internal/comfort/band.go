// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package comfort classifies daily temperatures into comfort bands and aggregates a city's
// daily series into a band distribution.
package comfort

import (
	"fmt"
	"strings"

	"github.com/vorlif/spreak/localize"
)

// Band is one of the ordered comfort categories.
type Band uint8

const (
	Cold Band = iota
	Cool
	Comfortable
	Warm
	Hot
)

// NumBands is the size of the closed band set.
const NumBands = 5

var bandNames = [NumBands]localize.MsgID{
	Cold:        "Cold",
	Cool:        "Cool",
	Comfortable: "Comfortable",
	Warm:        "Warm",
	Hot:         "Hot",
}

// Bands returns all bands in display order.
func Bands() []Band {
	return []Band{Cold, Cool, Comfortable, Warm, Hot}
}

// ParseBand returns the band for the given case-insensitive English name.
func ParseBand(name string) (Band, error) {
	for _, band := range Bands() {
		if strings.EqualFold(name, bandNames[band]) {
			return band, nil
		}
	}
	return 0, fmt.Errorf("unknown comfort band: %q", name)
}

// MsgID returns the band name as a translatable message id.
func (b Band) MsgID() localize.MsgID {
	if !b.Valid() {
		return "Unknown"
	}
	return bandNames[b]
}

func (b Band) String() string {
	return b.MsgID()
}

func (b Band) Valid() bool {
	return b < NumBands
}
