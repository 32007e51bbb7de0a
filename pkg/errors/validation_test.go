package errors

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "octocat", false},
		{"valid with dash", "anuraghazra-bot", false},
		{"valid digits", "42", false},
		{"valid max length", strings.Repeat("a", 39), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 40), true},
		{"leading dash", "-octocat", true},
		{"underscore", "octo_cat", true},
		{"path traversal", "../etc", true},
		{"space", "octo cat", true},
		{"control char", "octo\x01cat", true},
		{"newline", "octo\ncat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}

	if err := ValidateUsername(""); !Is(err, ErrCodeMissingParam) {
		t.Errorf("empty username should be a missing parameter, got %v", err)
	}
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"bytes", "percentages"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"absent", "", false},
		{"bytes", "bytes", false},
		{"percentages", "percentages", false},

		{"unknown", "kilobytes", true},
		{"case sensitive", "Bytes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnum("stats_format", tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnum(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}

	err := ValidateEnum("stats_format", "x", allowed)
	expected := "Invalid stats_format: must be one of bytes, percentages"
	if UserMessage(err) != expected {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err), expected)
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantOK  bool
		wantErr bool
	}{
		{"absent", "", 0, false, false},
		{"lower bound", "1", 1, true, false},
		{"upper bound", "20", 20, true, false},
		{"fraction", "2.5", 2.5, true, false},

		{"below", "0", 0, false, true},
		{"above", "21", 0, false, true},
		{"not a number", "five", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ValidateRange("langs_count", tt.input, 1, 20)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ValidateRange(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	_, _, err := ValidateRange("langs_count", "99", 1, 20)
	expected := "Invalid langs_count: must be a number between 1 and 20"
	if UserMessage(err) != expected {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err), expected)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://api.github.com/graphql", false},
		{"http", "http://localhost:8080/graphql", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
