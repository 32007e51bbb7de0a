package cache

import "strings"

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs yield equal keys.
type Keyer interface {
	// HTTPKey identifies a cached HTTP response.
	HTTPKey(namespace, key string) string
	// UsageKey identifies the language usage fetched for a user.
	UsageKey(username string, opts UsageKeyOpts) string
	// CardKey identifies a rendered card for a given usage payload.
	CardKey(usageHash string, opts CardKeyOpts) string
}

// UsageKeyOpts are the fetch options that change the fetched usage.
type UsageKeyOpts struct {
	ExcludeRepos []string `json:"exclude_repos,omitempty"`
	SizeWeight   float64  `json:"size_weight"`
	CountWeight  float64  `json:"count_weight"`
}

// CardKeyOpts are the presentation options that change a rendered card.
// Callers typically pass the card options struct serialized by the
// renderer; any JSON-encodable value works.
type CardKeyOpts struct {
	Options any `json:"options"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// UsageKey hashes the lower-cased username with the fetch options.
// GitHub logins are case-insensitive.
func (DefaultKeyer) UsageKey(username string, opts UsageKeyOpts) string {
	return hashKey("usage", strings.ToLower(username), opts)
}

// CardKey hashes the usage hash with the card options.
func (DefaultKeyer) CardKey(usageHash string, opts CardKeyOpts) string {
	return hashKey("card", usageHash, opts)
}

var _ Keyer = DefaultKeyer{}
