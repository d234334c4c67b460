// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package openmeteorecent retrieves daily mean temperatures of the recent past from the
// Open-Meteo forecast API, which keeps the last months available through its past_days
// parameter.
package openmeteorecent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hectormalot/omgo"

	"github.com/wneessen/climate-comfort/internal/geo"
	"github.com/wneessen/climate-comfort/internal/logger"
	"github.com/wneessen/climate-comfort/internal/vartype"
	"github.com/wneessen/climate-comfort/internal/weather"
)

const (
	name         = "open-meteo-recent"
	dailyMetric  = "temperature_2m_mean"
	FetchTimeout = time.Second * 10

	// MaxPastDays is the furthest the forecast API reaches back.
	MaxPastDays = 92
)

var ErrOutOfRange = errors.New("period not covered by the forecast API")

type forecaster interface {
	Forecast(ctx context.Context, loc omgo.Location, opts *omgo.Options) (*omgo.Forecast, error)
}

type Recent struct {
	client forecaster
	log    *logger.Logger
	now    func() time.Time
}

func New(log *logger.Logger) (*Recent, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	client, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}
	return &Recent{client: client, log: log, now: time.Now}, nil
}

func (r *Recent) Name() string {
	return name
}

// DailyMeans returns the days of the period reported by the forecast API. The period must end
// no later than today and start at most MaxPastDays ago.
func (r *Recent) DailyMeans(ctx context.Context, coords geo.Coordinate, period weather.Period) (weather.Series, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	today := weather.Date(r.now())
	if period.End.After(today) {
		return nil, fmt.Errorf("%w: end date %s is in the future", ErrOutOfRange, period.End.Format(weather.DateLayout))
	}
	pastDays := int(today.Sub(weather.Date(period.Start)).Hours() / 24)
	if pastDays > MaxPastDays {
		return nil, fmt.Errorf("%w: start date %s is more than %d days ago", ErrOutOfRange,
			period.Start.Format(weather.DateLayout), MaxPastDays)
	}

	location, err := omgo.NewLocation(coords.Lat, coords.Lon)
	if err != nil {
		return nil, fmt.Errorf("failed create Open-Meteo location from coordinates: %w", err)
	}
	opts := &omgo.Options{
		TemperatureUnit: "celsius",
		Timezone:        "auto",
		PastDays:        pastDays,
		DailyMetrics:    []string{dailyMetric},
	}

	ctxFetch, cancelFetch := context.WithTimeout(ctx, FetchTimeout)
	defer cancelFetch()
	forecast, err := r.client.Forecast(ctxFetch, location, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast data: %w", err)
	}

	values := forecast.DailyMetrics[dailyMetric]
	if len(values) != len(forecast.DailyTimes) {
		return nil, fmt.Errorf("Open-Meteo API returned %d dates but %d values", len(forecast.DailyTimes),
			len(values))
	}
	series := make(weather.Series, 0, period.Days())
	for i, date := range forecast.DailyTimes {
		if !period.Contains(date) {
			continue
		}
		series = append(series, weather.Day{
			Date: weather.Date(date),
			Mean: vartype.FloatOrMissing(values[i]),
		})
	}
	r.log.Debug("retrieved recent daily means", slog.String("coordinates", coords.String()),
		slog.Int("past_days", pastDays), slog.Int("days", len(series)))
	return series, nil
}
