// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"

	"github.com/wneessen/climate-comfort/internal/config"
	"github.com/wneessen/climate-comfort/internal/geo"
	"github.com/wneessen/climate-comfort/internal/http"
	"github.com/wneessen/climate-comfort/internal/registry"
	"github.com/wneessen/climate-comfort/internal/weather"
	openmeteo "github.com/wneessen/climate-comfort/internal/weather/provider/open-meteo"
	openmeteorecent "github.com/wneessen/climate-comfort/internal/weather/provider/open-meteo-recent"
)

func (s *Service) selectWeatherProvider() (provider weather.Provider, err error) {
	switch strings.ToLower(s.config.Weather.Provider) {
	case "open-meteo":
		provider, err = openmeteo.New(http.New(s.logger, http.WithTimeout(s.config.Weather.Timeout)), s.logger,
			s.config.Weather.Timeout)
		if err != nil {
			return provider, fmt.Errorf("failed to create Open-Meteo weather provider: %w", err)
		}
	case "open-meteo-recent":
		provider, err = openmeteorecent.New(s.logger)
		if err != nil {
			return provider, fmt.Errorf("failed to create Open-Meteo recent weather provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported weather provider: %s", s.config.Weather.Provider)
	}
	return provider, nil
}

// selectRegistry returns the configured city table, or the built-in one if the configuration
// has none, restricted to the selected cities.
func (s *Service) selectRegistry(reg *registry.Registry) (*registry.Registry, error) {
	var err error
	if reg == nil {
		reg, err = registryFromConfig(s.config)
		if err != nil {
			return nil, err
		}
	}
	return reg.Select(s.config.Select...)
}

func registryFromConfig(conf *config.Config) (*registry.Registry, error) {
	if len(conf.Cities) == 0 {
		return registry.Default()
	}
	cities := make([]registry.City, 0, len(conf.Cities))
	for _, city := range conf.Cities {
		cities = append(cities, registry.City{
			ID:         city.ID,
			Name:       city.Name,
			Coordinate: geo.New(city.Lon, city.Lat),
		})
	}
	return registry.New(cities...)
}
