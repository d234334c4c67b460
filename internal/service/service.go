// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package service runs the comfort distribution pipeline: it retrieves the daily means of every
// registered city, aggregates them into comfort distributions, builds the matrix and hands it
// to the presenter.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/vorlif/spreak"
	"golang.org/x/sync/errgroup"

	"github.com/wneessen/climate-comfort/internal/comfort"
	"github.com/wneessen/climate-comfort/internal/config"
	"github.com/wneessen/climate-comfort/internal/logger"
	"github.com/wneessen/climate-comfort/internal/matrix"
	"github.com/wneessen/climate-comfort/internal/presenter"
	"github.com/wneessen/climate-comfort/internal/registry"
	"github.com/wneessen/climate-comfort/internal/weather"
)

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	t         *spreak.Localizer
	output    io.Writer
	presenter *presenter.Presenter
	provider  weather.Provider
	registry  *registry.Registry
	scheme    comfort.Scheme
}

// Option configures a Service.
type Option func(*Service)

// WithProvider replaces the weather provider selected by the configuration.
func WithProvider(provider weather.Provider) Option {
	return func(s *Service) {
		s.provider = provider
	}
}

// WithRegistry replaces the city table from the configuration. The configured selection is
// still applied.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Service) {
		s.registry = reg
	}
}

// WithOutput sets the writer the text table is written to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.output = w
	}
}

// result is the outcome of the retrieval and aggregation of a single city.
type result struct {
	dist comfort.Distribution
	err  error
}

// New creates the service. Configuration errors of the city table are reported here, before any
// data is retrieved.
func New(conf *config.Config, log *logger.Logger, t *spreak.Localizer, opts ...Option) (*Service, error) {
	service := &Service{
		config: conf,
		logger: log,
		t:      t,
		output: os.Stdout,
		scheme: comfort.DefaultScheme(),
	}
	for _, opt := range opts {
		opt(service)
	}

	reg, err := service.selectRegistry(service.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to set up city registry: %w", err)
	}
	service.registry = reg

	if service.provider == nil {
		provider, err := service.selectWeatherProvider()
		if err != nil {
			return nil, err
		}
		service.provider = provider
	}

	pres, err := presenter.New(conf, t, service.scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}
	service.presenter = pres

	return service, nil
}

// Run retrieves and aggregates all cities, writes the table and the chart and returns the
// report. Cities that fail retrieval or have no valid observation are skipped and listed in
// the report; they never abort the run.
func (s *Service) Run(ctx context.Context) (*presenter.Report, error) {
	log := s.logger.With(slog.String("run_id", uuid.NewString()))
	period := s.config.Period()
	cities := s.registry.Cities()
	log.Debug("retrieving daily means", slog.Int("cities", len(cities)),
		slog.String("period", period.String()), slog.String("provider", s.provider.Name()))

	results := make([]result, len(cities))
	group := new(errgroup.Group)
	group.SetLimit(s.config.Weather.Concurrency)
	for i, city := range cities {
		group.Go(func() error {
			results[i] = s.processCity(ctx, log, city, period)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run canceled: %w", err)
	}

	report := &presenter.Report{
		Period: period,
		Source: s.provider.Name(),
	}
	builder := matrix.NewBuilder(s.config.Band())
	for i, city := range cities {
		if results[i].err != nil {
			report.Skipped = append(report.Skipped, presenter.Skip{City: city, Err: results[i].err})
			continue
		}
		if err := builder.Add(city, results[i].dist); err != nil {
			return nil, fmt.Errorf("failed to add city to matrix: %w", err)
		}
	}
	report.Matrix = builder.Build()
	log.Debug("matrix built", slog.Int("rows", report.Matrix.Len()),
		slog.Int("skipped", len(report.Skipped)))

	if err := s.presenter.WriteTable(s.output, *report); err != nil {
		return report, fmt.Errorf("failed to write table: %w", err)
	}
	if s.config.Output.Chart != "" {
		if err := s.writeChart(*report); err != nil {
			return report, err
		}
		log.Info(s.t.Get("chart written"), slog.String("file", s.config.Output.Chart))
	}

	return report, nil
}

func (s *Service) processCity(ctx context.Context, log *logger.Logger, city registry.City,
	period weather.Period,
) result {
	log = log.With(slog.String("city", city.ID))
	series, err := s.provider.DailyMeans(ctx, city.Coordinate, period)
	if err != nil {
		log.Warn(s.t.Get("retrieval failed"), logger.Err(err))
		return result{err: err}
	}

	dist, err := s.scheme.Aggregate(city.ID, series.Valid())
	if err != nil {
		log.Warn(s.t.Get("no valid observations"), slog.Int("missing", series.Missing()))
		return result{err: err}
	}
	log.Debug("city aggregated", slog.Int("days", dist.Days), slog.Int("missing", series.Missing()))
	return result{dist: dist}
}

func (s *Service) writeChart(report presenter.Report) error {
	file, err := os.Create(s.config.Output.Chart)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err = s.presenter.RenderChart(file, report); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close chart file: %w", err)
	}
	return nil
}
