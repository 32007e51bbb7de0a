package i18n

import (
	"fmt"
	"testing"
)

func TestT(t *testing.T) {
	tests := []struct {
		key, locale, want string
	}{
		{KeyLangCardTitle, "en", "Most Used Languages"},
		{KeyLangCardTitle, "", "Most Used Languages"},
		{KeyLangCardTitle, "de", "Meist verwendete Sprachen"},
		{KeyLangCardTitle, "PT-BR", "Linguagens mais usadas"},
		{KeyLangCardNoData, "ja", "言語データがありません。"},
		{KeyLangCardNoData, "xx-unknown", "No languages data."},
		{"missing.key", "en", "missing.key"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.locale, func(t *testing.T) {
			if got := T(tt.key, tt.locale); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.key, tt.locale, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		locale, want string
	}{
		{"", "en"},
		{"fr", "fr"},
		{"zh-CN", "zh-cn"},
		{"de-AT", "de"},
		{"not a locale!", "en"},
	}
	for _, tt := range tests {
		if got := Match(tt.locale); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("pt-BR") {
		t.Error("pt-BR should be supported")
	}
	if IsSupported("de-AT") {
		t.Error("de-AT is not an exact supported code")
	}
}

func TestEveryKeyHasEveryLocale(t *testing.T) {
	for key, msgs := range translations {
		for _, l := range Supported() {
			if msgs[l] == "" {
				t.Errorf("%s: missing %s", key, l)
			}
		}
	}
}

func ExampleT() {
	fmt.Println(T(KeyLangCardTitle, "es"))
	// Output: Lenguajes más usados
}
