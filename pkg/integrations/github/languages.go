package github

import (
	"math"
	"slices"

	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// FetchOptions controls which repositories count towards a user's languages
// and how sizes are weighted. Start from [DefaultFetchOptions]; the zero
// value weights every language equally.
type FetchOptions struct {
	// ExcludeRepo lists repository names (exact match) to leave out.
	ExcludeRepo []string `json:"exclude_repo,omitempty"`

	// SizeWeight and CountWeight shape the ranking: each language's size
	// becomes bytes^SizeWeight * repos^CountWeight.
	SizeWeight  float64 `json:"size_weight"`
	CountWeight float64 `json:"count_weight"`

	// Refresh bypasses the response cache.
	Refresh bool `json:"-"`
}

// DefaultFetchOptions ranks languages by bytes of code alone.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{SizeWeight: 1, CountWeight: 0}
}

// Aggregate folds repositories into per-language usage. Repositories named
// in opts.ExcludeRepo and repositories without languages are skipped. Each
// language accumulates its byte size and the number of repositories it
// appears in, then the size is replaced by the weighted score.
func Aggregate(repos []Repository, opts FetchOptions) toplangs.Usage {
	type tally struct {
		lang  toplangs.Language
		bytes int64
		count int
	}
	tallies := map[string]*tally{}
	for _, repo := range repos {
		if len(repo.Languages) == 0 || slices.Contains(opts.ExcludeRepo, repo.Name) {
			continue
		}
		for _, l := range repo.Languages {
			t, ok := tallies[l.Name]
			if !ok {
				t = &tally{lang: toplangs.Language{Name: l.Name, Color: l.Color}}
				tallies[l.Name] = t
			}
			t.bytes += l.Size
			t.count++
		}
	}

	usage := make(toplangs.Usage, len(tallies))
	for name, t := range tallies {
		score := math.Pow(float64(t.bytes), opts.SizeWeight) * math.Pow(float64(t.count), opts.CountWeight)
		t.lang.Size = int64(math.Round(score))
		usage[name] = t.lang
	}
	return usage
}
