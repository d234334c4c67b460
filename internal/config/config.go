// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"

	"github.com/wneessen/climate-comfort/internal/comfort"
	"github.com/wneessen/climate-comfort/internal/weather"
)

const (
	configEnv         = "CLIMATECOMFORT"
	DefaultCaptionTpl = `{{loc "Temperature comfort distribution by city"}} ({{dateFormat .Period.Start}} - ` +
		`{{dateFormat .Period.End}}, {{.Source}})`
)

// City is a registry entry in the configuration file.
type City struct {
	ID   string  `fig:"id"`
	Name string  `fig:"name"`
	Lon  float64 `fig:"lon"`
	Lat  float64 `fig:"lat"`
}

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`
	// Allowed values: cold, cool, comfortable, warm, hot
	SortBand string `fig:"sort_band" default:"hot"`

	Dates struct {
		Start time.Time `fig:"start" default:"2023-01-01"`
		End   time.Time `fig:"end" default:"2024-12-31"`
	} `fig:"period"`

	Weather struct {
		// Allowed values: open-meteo, open-meteo-recent
		Provider string `fig:"provider" default:"open-meteo"`
		// Allowed value: 1 to 32
		Concurrency int           `fig:"concurrency" default:"4"`
		Timeout     time.Duration `fig:"timeout" default:"30s"`
	} `fig:"weather"`

	Output struct {
		Chart string `fig:"chart" default:"comfort.html"`
		// UseIDs labels cities by their ID instead of their display name.
		UseIDs bool `fig:"use_ids"`
	} `fig:"output"`

	Templates struct {
		Caption string `fig:"caption"`
	} `fig:"templates"`

	// Cities replaces the built-in city table if set. Select restricts the run to the listed
	// city IDs, in that order.
	Cities []City   `fig:"cities"`
	Select []string `fig:"select"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv),
		fig.TimeLayout(weather.DateLayout)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv),
		fig.TimeLayout(weather.DateLayout)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if _, err := comfort.ParseBand(c.SortBand); err != nil {
		return fmt.Errorf("invalid sort band: %w", err)
	}
	if err := c.Period().Validate(); err != nil {
		return err
	}
	switch strings.ToLower(c.Weather.Provider) {
	case "open-meteo", "open-meteo-recent":
	default:
		return fmt.Errorf("invalid weather provider: %s", c.Weather.Provider)
	}
	if c.Weather.Concurrency < 1 || c.Weather.Concurrency > 32 {
		return fmt.Errorf("invalid weather concurrency: %d", c.Weather.Concurrency)
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("invalid weather timeout: %s", c.Weather.Timeout)
	}
	if c.Templates.Caption == "" {
		c.Templates.Caption = DefaultCaptionTpl
	}

	return nil
}

// Period returns the configured date range.
func (c *Config) Period() weather.Period {
	return weather.NewPeriod(c.Dates.Start, c.Dates.End)
}

// Band returns the band the matrix rows are sorted by.
func (c *Config) Band() comfort.Band {
	band, err := comfort.ParseBand(c.SortBand)
	if err != nil {
		return comfort.Hot
	}
	return band
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
