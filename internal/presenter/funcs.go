// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/vorlif/humanize"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"dateFormat":  p.dateFormat,
		"timeFormat":  timeFormat,
		"floatFormat": floatFormat,
		"loc":         p.loc,
		"lc":          strings.ToLower,
		"uc":          strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	return p.localizer.Get(val)
}

func (p *Presenter) dateFormat(val time.Time) string {
	return p.humanizer.FormatTime(val, humanize.DateFormat)
}

func timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func floatFormat(val float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, val)
}
