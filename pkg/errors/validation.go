package errors

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// usernameRegex matches GitHub logins: alphanumerics and hyphens, not
// starting with a hyphen, at most 39 characters.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,38}$`)

// ValidateUsername validates a GitHub username before it is sent upstream
// or used as a cache key.
func ValidateUsername(name string) error {
	if name == "" {
		return MissingParam("username")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUsername, "username contains invalid control characters")
		}
	}

	if !usernameRegex.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid GitHub username: %q", name)
	}

	return nil
}

// ValidateEnum checks that value is one of allowed. An empty value means
// the parameter was not given and is accepted.
func ValidateEnum(param, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return New(ErrCodeInvalidParam, "Invalid %s: must be one of %s", param, strings.Join(allowed, ", "))
}

// ValidateRange parses value as a number within [lo, hi]. An empty value
// is accepted and reported as ok == false.
func ValidateRange(param, value string, lo, hi float64) (n float64, ok bool, err error) {
	if value == "" {
		return 0, false, nil
	}
	n, perr := strconv.ParseFloat(value, 64)
	if perr != nil || n < lo || n > hi {
		return 0, false, New(ErrCodeInvalidParam, "Invalid %s: must be a number between %s and %s",
			param, strconv.FormatFloat(lo, 'f', -1, 64), strconv.FormatFloat(hi, 'f', -1, 64))
	}
	return n, true, nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
