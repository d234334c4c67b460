// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package registry holds the static set of cities a comfort profile is computed for.
package registry

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/wneessen/climate-comfort/internal/geo"
)

var (
	ErrDuplicateCity = errors.New("city registered twice with conflicting coordinates")
	ErrInvalidCity   = errors.New("invalid city entry")
	ErrUnknownCity   = errors.New("unknown city")
)

// ConfigError is returned for malformed registry contents. It is a hard error: a run must not
// start retrieving data while the registry is broken.
type ConfigError struct {
	City string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("registry configuration error for city %q: %s", e.City, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// City is a registered location. ID is the stable identifier, Name an optional display name
// (e.g. the native-language city name).
type City struct {
	ID         string `validate:"required"`
	Name       string
	Coordinate geo.Coordinate
}

// Label returns the display name if requested and available, otherwise the ID.
func (c City) Label(useName bool) string {
	if useName && c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Registry is an insertion-ordered, duplicate-checked set of cities. It is populated once and
// read-only afterwards.
type Registry struct {
	cities   []City
	index    map[string]int
	validate *validator.Validate
}

// New returns a Registry holding the given cities in order.
func New(cities ...City) (*Registry, error) {
	reg := &Registry{
		cities:   make([]City, 0, len(cities)),
		index:    make(map[string]int, len(cities)),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, city := range cities {
		if err := reg.Register(city); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register adds a city. Registering an identical entry twice is a no-op, registering an ID
// again with different coordinates fails.
func (r *Registry) Register(city City) error {
	if err := r.validate.Struct(city); err != nil {
		return &ConfigError{City: city.ID, Err: fmt.Errorf("%w: %w", ErrInvalidCity, err)}
	}

	idx, ok := r.index[city.ID]
	if !ok {
		r.index[city.ID] = len(r.cities)
		r.cities = append(r.cities, city)
		return nil
	}

	existing := r.cities[idx]
	if existing.Coordinate.Equal(city.Coordinate) {
		return nil
	}
	return &ConfigError{City: city.ID, Err: fmt.Errorf("%w: (%s) vs. (%s), %.0fm apart", ErrDuplicateCity,
		existing.Coordinate, city.Coordinate, existing.Coordinate.Distance(city.Coordinate))}
}

// Cities returns a copy of the registered cities in registration order.
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)
	return out
}

// Len returns the number of registered cities.
func (r *Registry) Len() int {
	return len(r.cities)
}

// Lookup returns the city registered under id.
func (r *Registry) Lookup(id string) (City, bool) {
	idx, ok := r.index[id]
	if !ok {
		return City{}, false
	}
	return r.cities[idx], true
}

// Select returns a new Registry holding only the given cities, in the given order. An empty
// selection returns the Registry itself.
func (r *Registry) Select(ids ...string) (*Registry, error) {
	if len(ids) == 0 {
		return r, nil
	}

	selected := make([]City, 0, len(ids))
	for _, id := range ids {
		city, ok := r.Lookup(id)
		if !ok {
			return nil, &ConfigError{City: id, Err: ErrUnknownCity}
		}
		selected = append(selected, city)
	}
	return New(selected...)
}
