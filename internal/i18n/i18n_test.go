// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNew(t *testing.T) {
	t.Run("new i18n provider with empty locale string succeeds", func(t *testing.T) {
		provider, err := New("")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if provider == nil {
			t.Fatal("expected i18n provider to be non-nil")
		}
	})
	t.Run("chinese catalog translates band names", func(t *testing.T) {
		provider, err := New("zh-CN")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		tests := map[string]string{
			"Cold":        "寒冷",
			"Cool":        "凉爽",
			"Comfortable": "舒适",
			"Warm":        "偏热",
			"Hot":         "炎热",
		}
		for msgID, want := range tests {
			if got := provider.Get(msgID); got != want {
				t.Errorf("expected %q to translate to %q, got %q", msgID, want, got)
			}
		}
	})
	t.Run("english returns the message id", func(t *testing.T) {
		provider, err := New("en-US")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if got := provider.Get("Hot"); got != "Hot" {
			t.Errorf("expected Hot, got %q", got)
		}
	})
	t.Run("unsupported language falls back to english", func(t *testing.T) {
		provider, err := New("fr")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if provider.Language() != language.English {
			t.Errorf("expected language to be english, got %s", provider.Language())
		}
		if got := provider.Get("Cool"); got != "Cool" {
			t.Errorf("expected Cool, got %q", got)
		}
	})
}

func TestLanguages(t *testing.T) {
	tags, err := Languages()
	if err != nil {
		t.Fatalf("failed to list languages: %s", err)
	}
	want := []language.Tag{language.English, language.Chinese}
	if len(tags) != len(want) {
		t.Fatalf("expected %d languages, got %d: %v", len(want), len(tags), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("expected language %d to be %s, got %s", i, want[i], tags[i])
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		loc  string
		want language.Tag
	}{
		{"english", "en", language.English},
		{"american english", "en-US", language.English},
		{"chinese", "zh", language.Chinese},
		{"simplified chinese", "zh-CN", language.Chinese},
		{"unsupported language", "de", language.English},
		{"garbage", "not a locale", language.English},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Match(tc.loc)
			if err != nil {
				t.Fatalf("failed to match language: %s", err)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
