// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/wneessen/climate-comfort/internal/comfort"
)

func TestNew(t *testing.T) {
	const (
		expectLogLevel    = slog.LevelInfo
		expectProvider    = "open-meteo"
		expectConcurrency = 4
		expectTimeout     = time.Second * 30
		expectChart       = "comfort.html"
	)
	t.Run("new config with all defaults set", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.LogLevel != expectLogLevel {
			t.Errorf("expected log level to be: %s, got %s", expectLogLevel, conf.LogLevel)
		}
		if conf.Band() != comfort.Hot {
			t.Errorf("expected sort band to be: %s, got %s", comfort.Hot, conf.Band())
		}
		period := conf.Period()
		if got := period.Start.Format("2006-01-02"); got != "2023-01-01" {
			t.Errorf("expected period start to be 2023-01-01, got %s", got)
		}
		if got := period.End.Format("2006-01-02"); got != "2024-12-31" {
			t.Errorf("expected period end to be 2024-12-31, got %s", got)
		}
		if conf.Weather.Provider != expectProvider {
			t.Errorf("expected weather provider to be: %s, got %s", expectProvider, conf.Weather.Provider)
		}
		if conf.Weather.Concurrency != expectConcurrency {
			t.Errorf("expected concurrency to be: %d, got %d", expectConcurrency, conf.Weather.Concurrency)
		}
		if conf.Weather.Timeout != expectTimeout {
			t.Errorf("expected timeout to be: %s, got %s", expectTimeout, conf.Weather.Timeout)
		}
		if conf.Output.Chart != expectChart {
			t.Errorf("expected chart file to be: %s, got %s", expectChart, conf.Output.Chart)
		}
		if conf.Output.UseIDs {
			t.Error("expected display names to be used")
		}
		if conf.Templates.Caption != DefaultCaptionTpl {
			t.Errorf("expected default caption template, got %q", conf.Templates.Caption)
		}
		if len(conf.Cities) != 0 {
			t.Errorf("expected no configured cities, got %d", len(conf.Cities))
		}
	})
	t.Run("sort band from env", func(t *testing.T) {
		t.Setenv("CLIMATECOMFORT_SORT_BAND", "Comfortable")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Band() != comfort.Comfortable {
			t.Errorf("expected sort band to be: %s, got %s", comfort.Comfortable, conf.Band())
		}
	})
	t.Run("period from env", func(t *testing.T) {
		t.Setenv("CLIMATECOMFORT_PERIOD_START", "2020-01-01")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if got := conf.Period().Days(); got != 1827 {
			t.Errorf("expected 1827 days, got %d", got)
		}
	})

	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"invalid log level", "CLIMATECOMFORT_LOGLEVEL", "invalid"},
		{"invalid sort band", "CLIMATECOMFORT_SORT_BAND", "tepid"},
		{"invalid weather provider", "CLIMATECOMFORT_WEATHER_PROVIDER", "meteostat"},
		{"concurrency too low", "CLIMATECOMFORT_WEATHER_CONCURRENCY", "-1"},
		{"concurrency too high", "CLIMATECOMFORT_WEATHER_CONCURRENCY", "33"},
		{"end before start", "CLIMATECOMFORT_PERIOD_END", "2022-12-31"},
		{"malformed date", "CLIMATECOMFORT_PERIOD_START", "01.01.2023"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.env, tc.val)
			_, err := New()
			if err == nil {
				t.Error("expected config to fail, but didn't")
			}
		})
	}
}

func TestNewFromFile(t *testing.T) {
	t.Run("reading config from valid file succeeds", func(t *testing.T) {
		conf, err := NewFromFile("../../etc", "config.toml")
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Locale != "zh" {
			t.Errorf("expected locale to be zh, got %s", conf.Locale)
		}
		if len(conf.Cities) != 4 {
			t.Fatalf("expected 4 cities, got %d", len(conf.Cities))
		}
		want := City{ID: "Changsha", Name: "长沙", Lon: 113.0, Lat: 28.21667}
		if conf.Cities[0] != want {
			t.Errorf("expected first city to be %+v, got %+v", want, conf.Cities[0])
		}
	})
	t.Run("reading config from non-existent file fails", func(t *testing.T) {
		_, err := NewFromFile("../../etc", "non-existent.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("reading invalid config file fails", func(t *testing.T) {
		_, err := NewFromFile("../../testdata", "invalid.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
}
