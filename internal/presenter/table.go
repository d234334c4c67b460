// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// WriteTable writes the caption and the distribution matrix as an aligned text table.
// Columns are padded by display width so that wide (e.g. CJK) city names line up.
func (p *Presenter) WriteTable(w io.Writer, report Report) error {
	caption, err := p.Caption(report)
	if err != nil {
		return err
	}

	bands := report.Matrix.Bands()
	header := make([]string, 0, len(bands)+2)
	header = append(header, p.loc("City"))
	for _, band := range bands {
		header = append(header, p.BandLabel(band))
	}
	header = append(header, p.loc("Days"))

	lines := [][]string{header}
	for _, row := range report.Matrix.Rows {
		line := make([]string, 0, len(header))
		line = append(line, p.CityLabel(row.City))
		for _, band := range bands {
			line = append(line, floatFormat(row.Get(band), 2))
		}
		line = append(line, strconv.Itoa(row.Days))
		lines = append(lines, line)
	}

	widths := make([]int, len(header))
	for _, line := range lines {
		for i, cell := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	buf := new(strings.Builder)
	buf.WriteString(caption + "\n\n")
	for _, line := range lines {
		cells := make([]string, len(line))
		for i, cell := range line {
			if i == 0 {
				cells[i] = runewidth.FillRight(cell, widths[i])
				continue
			}
			cells[i] = runewidth.FillLeft(cell, widths[i])
		}
		buf.WriteString(strings.TrimRight(strings.Join(cells, columnGap), " ") + "\n")
	}

	if len(report.Skipped) > 0 {
		buf.WriteString("\n" + p.loc("Skipped cities") + ":\n")
		for _, skip := range report.Skipped {
			fmt.Fprintf(buf, "  %s: %s\n", p.CityLabel(skip.City), p.skipReason(skip))
		}
	}

	_, err = io.WriteString(w, buf.String())
	return err
}
