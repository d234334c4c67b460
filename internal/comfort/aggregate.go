// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package comfort

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientData is returned when a city has no valid observation to aggregate.
var ErrInsufficientData = errors.New("insufficient data")

// Distribution is the share of days per band for one city. Percent is indexed by Band and
// always holds all bands.
type Distribution struct {
	City    string
	Days    int
	Counts  [NumBands]int
	Percent [NumBands]float64
}

// Get returns the percentage of the given band.
func (d Distribution) Get(b Band) float64 {
	if !b.Valid() {
		return 0
	}
	return d.Percent[b]
}

// Aggregate classifies each temperature and returns the per-band percentages rounded to two
// decimal places. temps must only hold valid observations.
func (s Scheme) Aggregate(city string, temps []float64) (Distribution, error) {
	dist := Distribution{City: city, Days: len(temps)}
	if dist.Days == 0 {
		return dist, fmt.Errorf("city %q: %w", city, ErrInsufficientData)
	}

	for _, temp := range temps {
		dist.Counts[s.Classify(temp)]++
	}
	dist.Percent = percentages(dist.Counts, dist.Days)
	return dist, nil
}

// Aggregate aggregates temps using the default scheme.
func Aggregate(city string, temps []float64) (Distribution, error) {
	return DefaultScheme().Aggregate(city, temps)
}

// percentages converts counts into percentages with two decimals that add up to exactly 100.
// Values are computed in hundredths of a percent, floored, and the remaining hundredths go to
// the largest remainders (lower band first on ties). The result can differ from rounding each
// value on its own by 0.01, e.g. thirds give 33.34/33.33/33.33 rather than 33.33 three times.
func percentages(counts [NumBands]int, total int) [NumBands]float64 {
	const scale = 100 * 100

	var units [NumBands]int
	var rems [NumBands]int
	assigned := 0
	for i, count := range counts {
		units[i] = count * scale / total
		rems[i] = count * scale % total
		assigned += units[i]
	}

	order := []int{0, 1, 2, 3, 4}
	sort.SliceStable(order, func(i, j int) bool {
		return rems[order[i]] > rems[order[j]]
	})
	for _, idx := range order {
		if assigned >= scale {
			break
		}
		if rems[idx] == 0 {
			continue
		}
		units[idx]++
		assigned++
	}

	var out [NumBands]float64
	for i, u := range units {
		out[i] = float64(u) / 100
	}
	return out
}
