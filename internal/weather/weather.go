// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/wneessen/climate-comfort/internal/geo"
	"github.com/wneessen/climate-comfort/internal/vartype"
)

// DateLayout is the layout of calendar dates in configuration and API requests.
const DateLayout = "2006-01-02"

var ErrInvalidPeriod = errors.New("invalid period")

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	DailyMeans(ctx context.Context, coords geo.Coordinate, period Period) (Series, error)
}

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod returns the Period between start and end, truncated to calendar dates.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: Date(start), End: Date(end)}
}

// Validate checks that the period is non-empty.
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: start and end date are required", ErrInvalidPeriod)
	}
	if Date(p.End).Before(Date(p.Start)) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidPeriod,
			p.End.Format(DateLayout), p.Start.Format(DateLayout))
	}
	return nil
}

// Days returns the number of calendar days in the period, both ends included.
func (p Period) Days() int {
	if p.Validate() != nil {
		return 0
	}
	return int(Date(p.End).Sub(Date(p.Start)).Hours()/24) + 1
}

// Contains reports whether the calendar date of t lies within the period.
func (p Period) Contains(t time.Time) bool {
	d := Date(t)
	return !d.Before(Date(p.Start)) && !d.After(Date(p.End))
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + ".." + p.End.Format(DateLayout)
}

// Date truncates t to its calendar date in UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Day is the daily mean temperature of one calendar date. Mean is unset when the provider has
// no value for that date.
type Day struct {
	Date time.Time
	Mean vartype.VarFloat64
}

// Series is a chronological list of days.
type Series []Day

// Valid reports whether the day has a usable value. A NaN mean counts as missing.
func (d Day) Valid() bool {
	return d.Mean.IsSet() && !math.IsNaN(d.Mean.Value())
}

// Valid returns the temperatures of all valid days, in order.
func (s Series) Valid() []float64 {
	temps := make([]float64, 0, len(s))
	for _, day := range s {
		if !day.Valid() {
			continue
		}
		temps = append(temps, day.Mean.Value())
	}
	return temps
}

// Missing returns the number of days without a usable value.
func (s Series) Missing() int {
	missing := 0
	for _, day := range s {
		if !day.Valid() {
			missing++
		}
	}
	return missing
}
