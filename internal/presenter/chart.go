// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "1200px"
	chartHeight = "800px"
	chartStack  = "distribution"
)

// RenderChart writes the matrix as a stacked bar chart to w as a self-contained HTML page.
// Every city is one bar, stacked in band order. The legend lists the bands in reverse order so
// that it reads top-down like the stack.
func (p *Presenter) RenderChart(w io.Writer, report Report) error {
	title, err := p.Caption(report)
	if err != nil {
		return err
	}

	bands := report.Matrix.Bands()
	legend := make([]string, 0, len(bands))
	for _, band := range bands {
		legend = append(legend, p.BandLabel(band))
	}
	slices.Reverse(legend)

	cities := make([]string, 0, report.Matrix.Len())
	for _, row := range report.Matrix.Rows {
		cities = append(cities, p.CityLabel(row.City))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Data:   legend,
			Orient: "vertical",
			Right:  "0",
			Top:    "middle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      p.loc("City"),
			AxisLabel: &opts.AxisLabel{Rotate: 45, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.loc("Percentage (%)")}),
	)

	bar.SetXAxis(cities)
	for _, band := range bands {
		data := make([]opts.BarData, 0, report.Matrix.Len())
		for _, row := range report.Matrix.Rows {
			data = append(data, segment(row.Get(band)))
		}
		bar.AddSeries(p.BandLabel(band), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: chartStack}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: p.scheme.Color(band)}),
		)
	}

	return bar.Render(w)
}

// segment returns the bar item of one band share. The label shows the share with one decimal;
// empty segments are unlabeled.
func segment(value float64) opts.BarData {
	label := &opts.Label{Show: opts.Bool(value > 0), Position: "inside"}
	if value > 0 {
		label.Formatter = fmt.Sprintf("%.1f%%", value)
	}
	return opts.BarData{Value: value, Label: label}
}
