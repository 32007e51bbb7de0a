// Package i18n provides the static strings shown on cards in several
// locales.
//
// Lookups never fail: unknown locales resolve to the closest supported one
// (via golang.org/x/text/language matching) and finally to English, and
// unknown keys return the key itself.
package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Translation keys.
const (
	KeyLangCardTitle  = "langcard.title"
	KeyLangCardNoData = "langcard.nodata"
)

// DefaultLocale is used when no supported locale matches.
const DefaultLocale = "en"

// locales lists the supported locale codes; the first entry is the default.
var locales = []string{"en", "de", "es", "fr", "it", "ja", "pt-br", "ru", "zh-cn"}

var translations = map[string]map[string]string{
	KeyLangCardTitle: {
		"en":    "Most Used Languages",
		"de":    "Meist verwendete Sprachen",
		"es":    "Lenguajes más usados",
		"fr":    "Langages les plus utilisés",
		"it":    "Linguaggi più utilizzati",
		"ja":    "最もよく使っている言語",
		"pt-br": "Linguagens mais usadas",
		"ru":    "Наиболее используемые языки",
		"zh-cn": "最常用的语言",
	},
	KeyLangCardNoData: {
		"en":    "No languages data.",
		"de":    "Keine Sprachdaten.",
		"es":    "Sin datos de lenguajes.",
		"fr":    "Aucune donnée sur les langages.",
		"it":    "Nessun dato sui linguaggi.",
		"ja":    "言語データがありません。",
		"pt-br": "Sem dados de linguagens.",
		"ru":    "Нет данных о языках.",
		"zh-cn": "没有语言数据。",
	},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(locales))
	for i, l := range locales {
		out[i] = language.Make(l)
	}
	return out
}

// Supported returns the supported locale codes.
func Supported() []string { return slices.Clone(locales) }

// IsSupported reports whether locale is one of the supported codes,
// ignoring case.
func IsSupported(locale string) bool {
	return slices.Contains(locales, strings.ToLower(locale))
}

// Match returns the supported locale closest to locale, or [DefaultLocale].
func Match(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	if l := strings.ToLower(locale); slices.Contains(locales, l) {
		return l
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return locales[idx]
}

// T returns the string for key in the closest supported locale.
func T(key, locale string) string {
	msgs, ok := translations[key]
	if !ok {
		return key
	}
	if s, ok := msgs[Match(locale)]; ok {
		return s
	}
	return msgs[DefaultLocale]
}
