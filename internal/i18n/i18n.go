// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package i18n provides the localizer for table, chart and log messages. Catalogs are embedded
// gettext files named after their language. English is the source language and needs none.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Xuanwo/go-locale"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"
)

const catalogDir = "locale"

//go:embed locale/*.po
var catalogs embed.FS

// SourceLanguage is the language of the message IDs.
var SourceLanguage = language.English

// Languages returns the source language followed by every language with an embedded catalog.
func Languages() ([]language.Tag, error) {
	entries, err := fs.ReadDir(catalogs, catalogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogs: %w", err)
	}
	tags := []language.Tag{SourceLanguage}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog name %q: %w", entry.Name(), err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Match returns the available language closest to loc. An empty loc detects the system
// locale. Languages without a catalog fall back to the source language.
func Match(loc string) (language.Tag, error) {
	tag := language.Make(loc)
	if loc == "" {
		detected, err := locale.Detect()
		if err != nil {
			detected = SourceLanguage
		}
		tag = detected
	}

	available, err := Languages()
	if err != nil {
		return SourceLanguage, err
	}
	_, idx, _ := language.NewMatcher(available).Match(tag)
	return available[idx], nil
}

// New returns a localizer for the language matched for loc.
func New(loc string) (*spreak.Localizer, error) {
	tag, err := Match(loc)
	if err != nil {
		return nil, err
	}
	catalogFS, err := fs.Sub(catalogs, catalogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	bundle, err := spreak.NewBundle(
		spreak.WithSourceLanguage(SourceLanguage),
		spreak.WithFallbackLanguage(SourceLanguage),
		spreak.WithDomainFs("", catalogFS),
		spreak.WithLanguage(tag),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create i18n bundle: %w", err)
	}
	return spreak.NewLocalizer(bundle, tag), nil
}
