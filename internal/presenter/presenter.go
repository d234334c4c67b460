// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package presenter renders the comfort distribution matrix as a text table and as a stacked
// bar chart.
package presenter

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/zhHans"
	"github.com/vorlif/spreak"

	"github.com/wneessen/climate-comfort/internal/comfort"
	"github.com/wneessen/climate-comfort/internal/config"
	"github.com/wneessen/climate-comfort/internal/matrix"
	"github.com/wneessen/climate-comfort/internal/registry"
	"github.com/wneessen/climate-comfort/internal/weather"
)

// Skip is a city that was left out of the matrix.
type Skip struct {
	City registry.City
	Err  error
}

// NoData reports whether the city was skipped for lack of valid observations rather than a
// retrieval failure.
func (s Skip) NoData() bool {
	return errors.Is(s.Err, comfort.ErrInsufficientData)
}

// Report is the result of one run, as handed to the presenter.
type Report struct {
	Period  weather.Period
	Source  string
	Matrix  matrix.Matrix
	Skipped []Skip
}

type Presenter struct {
	displayNames bool
	scheme       comfort.Scheme
	localizer    *spreak.Localizer
	humanizer    *humanize.Humanizer
	caption      *template.Template
}

func New(conf *config.Config, loc *spreak.Localizer, scheme comfort.Scheme) (*Presenter, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}
	if loc == nil {
		return nil, errors.New("localizer is required")
	}

	pres := &Presenter{
		displayNames: !conf.Output.UseIDs,
		scheme:       scheme,
		localizer:    loc,
		humanizer:    humanize.MustNew(humanize.WithLocale(zhHans.New())).CreateHumanizer(loc.Language()),
	}
	tpl, err := template.New("caption").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Caption)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption template: %w", err)
	}
	pres.caption = tpl
	return pres, nil
}

// Caption renders the caption template for the report.
func (p *Presenter) Caption(report Report) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := p.caption.Execute(buf, report); err != nil {
		return "", fmt.Errorf("failed to render caption template: %w", err)
	}
	return buf.String(), nil
}

// CityLabel returns the label of a city as shown in table and chart.
func (p *Presenter) CityLabel(city registry.City) string {
	return city.Label(p.displayNames)
}

// BandLabel returns the localized name of a band.
func (p *Presenter) BandLabel(band comfort.Band) string {
	return p.localizer.Get(band.MsgID())
}

func (p *Presenter) skipReason(skip Skip) string {
	if skip.NoData() {
		return p.localizer.Get("no valid observations")
	}
	return fmt.Sprintf("%s: %s", p.localizer.Get("retrieval failed"), skip.Err)
}
