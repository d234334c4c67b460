// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package geo provides the geographic coordinate type used by the city registry and the
// weather providers.
package geo

import (
	"fmt"
	"math"
)

const EarthRadius = 6371000.0 // meters

// Coordinate represents a geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64 `validate:"latitude"`
	Lon float64 `validate:"longitude"`
}

// New returns a Coordinate for the given longitude and latitude. The argument order follows
// the (lon, lat) pairs of the city tables.
func New(lon, lat float64) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

// Distance returns the great-circle distance in meters between two coordinates using the
// Haversine formula.
func (c Coordinate) Distance(other Coordinate) float64 {
	dLat := (c.Lat - other.Lat) * math.Pi / 180
	dLon := (c.Lon - other.Lon) * math.Pi / 180
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadius * math.Asin(math.Sqrt(h))
}

// Equal reports whether both coordinates point to exactly the same position.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Lat == other.Lat && c.Lon == other.Lon
}

// Valid checks if the coordinate is valid according to the EPSG logic
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("lat=%.5f lon=%.5f", c.Lat, c.Lon)
}
