// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wneessen/climate-comfort/internal/geo"
)

var (
	beijing  = City{ID: "Beijing", Name: "北京", Coordinate: geo.New(116.41667, 39.91667)}
	shanghai = City{ID: "Shanghai", Name: "上海", Coordinate: geo.New(121.43333, 31.23040)}
	nanjing  = City{ID: "Nanjing", Name: "南京", Coordinate: geo.New(118.78333, 32.05000)}
)

func TestNew(t *testing.T) {
	t.Run("new registry keeps registration order", func(t *testing.T) {
		reg, err := New(shanghai, beijing, nanjing)
		if err != nil {
			t.Fatalf("failed to create registry: %s", err)
		}
		want := []City{shanghai, beijing, nanjing}
		if diff := cmp.Diff(want, reg.Cities()); diff != "" {
			t.Errorf("unexpected cities (-want +got):\n%s", diff)
		}
	})
	t.Run("identical duplicate is de-duplicated", func(t *testing.T) {
		reg, err := New(nanjing, beijing, nanjing)
		if err != nil {
			t.Fatalf("failed to create registry: %s", err)
		}
		if reg.Len() != 2 {
			t.Errorf("expected 2 cities, got %d", reg.Len())
		}
		if reg.Cities()[0].ID != "Nanjing" {
			t.Errorf("expected first registration to keep its position, got %s", reg.Cities()[0].ID)
		}
	})
	t.Run("duplicate with conflicting coordinates fails", func(t *testing.T) {
		moved := nanjing
		moved.Coordinate = geo.New(118.80000, 32.05000)
		_, err := New(nanjing, beijing, moved)
		if err == nil {
			t.Fatal("expected registry to fail, but didn't")
		}
		if !errors.Is(err, ErrDuplicateCity) {
			t.Errorf("expected error to be %s, got %s", ErrDuplicateCity, err)
		}
		var confErr *ConfigError
		if !errors.As(err, &confErr) {
			t.Fatalf("expected error to be a ConfigError, got %T", err)
		}
		if confErr.City != "Nanjing" {
			t.Errorf("expected error for city Nanjing, got %s", confErr.City)
		}
		if !strings.Contains(err.Error(), "lon=118.78333") || !strings.Contains(err.Error(), "lon=118.80000") {
			t.Errorf("expected error to name both coordinate pairs, got %q", err)
		}
	})
	t.Run("invalid entries fail", func(t *testing.T) {
		tests := []struct {
			name string
			city City
		}{
			{"empty id", City{Coordinate: geo.New(1, 1)}},
			{"latitude out of range", City{ID: "x", Coordinate: geo.Coordinate{Lat: 91, Lon: 1}}},
			{"longitude out of range", City{ID: "x", Coordinate: geo.Coordinate{Lat: 1, Lon: -181}}},
			{"NaN latitude", City{ID: "x", Coordinate: geo.Coordinate{Lat: math.NaN(), Lon: 1}}},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := New(tc.city)
				if err == nil {
					t.Fatal("expected registry to fail, but didn't")
				}
				if !errors.Is(err, ErrInvalidCity) {
					t.Errorf("expected error to be %s, got %s", ErrInvalidCity, err)
				}
			})
		}
	})
}

func TestRegistry_Lookup(t *testing.T) {
	reg, err := New(beijing, shanghai)
	if err != nil {
		t.Fatalf("failed to create registry: %s", err)
	}
	city, ok := reg.Lookup("Shanghai")
	if !ok {
		t.Fatal("expected Shanghai to be registered")
	}
	if diff := cmp.Diff(shanghai, city); diff != "" {
		t.Errorf("unexpected city (-want +got):\n%s", diff)
	}
	if _, ok = reg.Lookup("Atlantis"); ok {
		t.Error("expected unknown city lookup to fail")
	}
}

func TestRegistry_Cities(t *testing.T) {
	reg, err := New(beijing)
	if err != nil {
		t.Fatalf("failed to create registry: %s", err)
	}
	cities := reg.Cities()
	cities[0].ID = "changed"
	if reg.Cities()[0].ID != "Beijing" {
		t.Error("expected registry to be unaffected by changes to the returned slice")
	}
}

func TestRegistry_Select(t *testing.T) {
	reg, err := New(beijing, shanghai, nanjing)
	if err != nil {
		t.Fatalf("failed to create registry: %s", err)
	}
	t.Run("selection keeps the requested order", func(t *testing.T) {
		sub, err := reg.Select("Nanjing", "Beijing")
		if err != nil {
			t.Fatalf("failed to select cities: %s", err)
		}
		want := []City{nanjing, beijing}
		if diff := cmp.Diff(want, sub.Cities()); diff != "" {
			t.Errorf("unexpected cities (-want +got):\n%s", diff)
		}
	})
	t.Run("empty selection returns all cities", func(t *testing.T) {
		sub, err := reg.Select()
		if err != nil {
			t.Fatalf("failed to select cities: %s", err)
		}
		if sub.Len() != 3 {
			t.Errorf("expected 3 cities, got %d", sub.Len())
		}
	})
	t.Run("unknown city fails", func(t *testing.T) {
		_, err := reg.Select("Beijing", "Atlantis")
		if !errors.Is(err, ErrUnknownCity) {
			t.Errorf("expected error to be %s, got %v", ErrUnknownCity, err)
		}
	})
}

func TestCity_Label(t *testing.T) {
	if got := beijing.Label(true); got != "北京" {
		t.Errorf("expected display name, got %s", got)
	}
	if got := beijing.Label(false); got != "Beijing" {
		t.Errorf("expected id, got %s", got)
	}
	noName := City{ID: "Lhasa"}
	if got := noName.Label(true); got != "Lhasa" {
		t.Errorf("expected id fallback, got %s", got)
	}
}

func TestDefault(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("failed to create default registry: %s", err)
	}
	if reg.Len() != len(defaultCities) {
		t.Errorf("expected every built-in city to be registered once, got %d of %d", reg.Len(),
			len(defaultCities))
	}
	for _, city := range reg.Cities() {
		if !city.Coordinate.Valid() {
			t.Errorf("city %s has invalid coordinates: %s", city.ID, city.Coordinate)
		}
		if city.Name == "" {
			t.Errorf("city %s has no display name", city.ID)
		}
	}
	got, ok := reg.Lookup("Nanjing")
	if !ok {
		t.Fatal("expected Nanjing to be registered")
	}
	if !got.Coordinate.Equal(nanjing.Coordinate) {
		t.Errorf("expected Nanjing at %s, got %s", nanjing.Coordinate, got.Coordinate)
	}
}
