// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package matrix assembles per-city band distributions into a city x band percentage table.
package matrix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/wneessen/climate-comfort/internal/comfort"
	"github.com/wneessen/climate-comfort/internal/registry"
)

var (
	ErrConflictingCity   = errors.New("city added twice with conflicting coordinates")
	ErrEmptyDistribution = errors.New("distribution without valid days")
)

// Row is one city of the matrix. Percent is indexed by comfort.Band.
type Row struct {
	City    registry.City
	Days    int
	Percent [comfort.NumBands]float64
}

// Get returns the percentage of the given band.
func (r Row) Get(b comfort.Band) float64 {
	if !b.Valid() {
		return 0
	}
	return r.Percent[b]
}

// Matrix holds one row per city and one column per band in comfort.Bands order.
type Matrix struct {
	SortBand comfort.Band
	Rows     []Row
}

// Bands returns the column order.
func (m Matrix) Bands() []comfort.Band {
	return comfort.Bands()
}

// Len returns the number of rows.
func (m Matrix) Len() int {
	return len(m.Rows)
}

// Column returns the values of one band in row order.
func (m Matrix) Column(b comfort.Band) []float64 {
	col := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		col[i] = row.Get(b)
	}
	return col
}

// Builder collects distributions and builds the sorted Matrix.
type Builder struct {
	sortBand comfort.Band
	rows     []Row
	index    map[string]int
}

// NewBuilder returns a Builder that sorts rows by sortBand, descending.
func NewBuilder(sortBand comfort.Band) *Builder {
	return &Builder{
		sortBand: sortBand,
		index:    make(map[string]int),
	}
}

// Add appends a row for city. Adding the same city again with identical coordinates is ignored.
func (b *Builder) Add(city registry.City, dist comfort.Distribution) error {
	if dist.Days == 0 {
		return fmt.Errorf("city %q: %w", city.ID, ErrEmptyDistribution)
	}
	if idx, ok := b.index[city.ID]; ok {
		if b.rows[idx].City.Coordinate.Equal(city.Coordinate) {
			return nil
		}
		return fmt.Errorf("city %q: %w", city.ID, ErrConflictingCity)
	}

	b.index[city.ID] = len(b.rows)
	b.rows = append(b.rows, Row{City: city, Days: dist.Days, Percent: dist.Percent})
	return nil
}

// Build returns the Matrix with rows sorted by the sort band in descending order. Rows with
// equal values keep the order in which they were added.
func (b *Builder) Build() Matrix {
	rows := slices.Clone(b.rows)
	slices.SortStableFunc(rows, func(x, y Row) int {
		return cmp.Compare(y.Get(b.sortBand), x.Get(b.sortBand))
	})
	return Matrix{SortBand: b.sortBand, Rows: rows}
}
