// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package openmeteo retrieves historical daily mean temperatures from the Open-Meteo
// archive API.
package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/wneessen/climate-comfort/internal/geo"
	"github.com/wneessen/climate-comfort/internal/http"
	"github.com/wneessen/climate-comfort/internal/logger"
	"github.com/wneessen/climate-comfort/internal/vartype"
	"github.com/wneessen/climate-comfort/internal/weather"
)

const (
	name              = "open-meteo"
	apiEndpoint       = "https://archive-api.open-meteo.com/v1/archive"
	dailyMetric       = "temperature_2m_mean"
	DefaultAPITimeout = time.Second * 30

	// breakerFailures is the number of consecutive transport failures that opens the circuit.
	breakerFailures = 3
	breakerCooldown = time.Second * 30
)

var (
	ErrUpstreamUnavailable = errors.New("Open-Meteo archive API unavailable")
	ErrInvalidResponse     = errors.New("invalid Open-Meteo API response")
)

// StatusError is returned when the API answered with a status other than 200.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Open-Meteo API returned non-positive response code %d: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("Open-Meteo API returned non-positive response code: %d", e.Code)
}

type OpenMeteo struct {
	log     *logger.Logger
	http    *http.Client
	timeout time.Duration
	circuit *gobreaker.CircuitBreaker
}

type resDate struct {
	time.Time
}

type response struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	GenerationTimeMs float64 `json:"generationtime_ms"`
	Timezone         string  `json:"timezone"`
	Elevation        float64 `json:"elevation"`
	Error            bool    `json:"error"`
	Reason           string  `json:"reason"`
	DailyUnits       struct {
		Time            string `json:"time"`
		TemperatureMean string `json:"temperature_2m_mean"`
	} `json:"daily_units"`
	Daily struct {
		Time            []resDate  `json:"time"`
		TemperatureMean []*float64 `json:"temperature_2m_mean"`
	} `json:"daily"`
}

func New(http *http.Client, log *logger.Logger, timeout time.Duration) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if timeout <= 0 {
		timeout = DefaultAPITimeout
	}

	provider := &OpenMeteo{http: http, log: log, timeout: timeout}
	provider.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: upstreamAnswered,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("weather provider circuit changed state", slog.String("provider", name),
				slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
	return provider, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

// DailyMeans returns one entry per calendar day of the period. Days for which the archive has
// no value are returned unset.
func (o *OpenMeteo) DailyMeans(ctx context.Context, coords geo.Coordinate, period weather.Period) (weather.Series, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if !coords.Valid() {
		return nil, fmt.Errorf("invalid coordinates: %s", coords)
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", coords.Lat))
	query.Set("longitude", fmt.Sprintf("%f", coords.Lon))
	query.Set("start_date", period.Start.Format(weather.DateLayout))
	query.Set("end_date", period.End.Format(weather.DateLayout))
	query.Set("daily", dailyMetric)
	query.Set("temperature_unit", "celsius")
	query.Set("timezone", "auto")

	result, err := o.circuit.Execute(func() (any, error) {
		ctxFetch, cancelFetch := context.WithTimeout(ctx, o.timeout)
		defer cancelFetch()
		res := new(response)
		code, err := o.http.Get(ctxFetch, apiEndpoint, res, query)
		switch {
		case code == 0 && err != nil:
			return nil, fmt.Errorf("failed to retrieve daily data from Open-Meteo API: %w", err)
		case code != 200:
			return nil, &StatusError{Code: code, Reason: res.Reason}
		case err != nil:
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return res, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if err != nil {
		return nil, err
	}

	series, err := toSeries(result.(*response), period)
	if err != nil {
		return nil, err
	}
	o.log.Debug("retrieved daily means", slog.String("coordinates", coords.String()),
		slog.Int("days", len(series)), slog.Int("missing", series.Missing()))
	return series, nil
}

// upstreamAnswered reports whether a request outcome leaves the circuit closed. Only transport
// failures, where no response was received, count against the circuit. An error status is a
// failure of that city alone.
func upstreamAnswered(err error) bool {
	var statusErr *StatusError
	return err == nil || errors.As(err, &statusErr) || errors.Is(err, ErrInvalidResponse) ||
		errors.Is(err, context.Canceled)
}

func toSeries(res *response, period weather.Period) (weather.Series, error) {
	if len(res.Daily.Time) != len(res.Daily.TemperatureMean) {
		return nil, fmt.Errorf("Open-Meteo API returned %d dates but %d values", len(res.Daily.Time),
			len(res.Daily.TemperatureMean))
	}

	series := make(weather.Series, 0, len(res.Daily.Time))
	for i, date := range res.Daily.Time {
		if !period.Contains(date.Time) {
			continue
		}
		series = append(series, weather.Day{
			Date: date.Time,
			Mean: vartype.FromPointer(res.Daily.TemperatureMean[i]),
		})
	}
	return series, nil
}

func (r *resDate) UnmarshalJSON(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("empty date")
	}
	if b[0] != '"' {
		return fmt.Errorf("invalid date format: %s", string(b))
	}

	apiDate, err := time.Parse(weather.DateLayout, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}
	r.Time = apiDate

	return nil
}
