// Package github fetches language statistics from the GitHub GraphQL API.
//
// # Usage
//
//	client := github.NewClient(c, []string{os.Getenv("PAT_1")}, "", time.Hour)
//	usage, err := client.FetchTopLanguages(ctx, "octocat", github.DefaultFetchOptions())
//
// The query covers up to 100 repositories the user owns, excluding forks,
// and the ten largest languages of each. [Aggregate] folds them into a
// [toplangs.Usage], summing bytes and counting repositories per language.
//
// # Tokens
//
// The client rotates through its personal access tokens. A token is skipped
// after GitHub reports it rate limited (a RATE_LIMITED error or a message
// mentioning the rate limit), answers "Bad credentials", or reports the
// account suspended; a jittered exponential backoff separates attempts.
// With no tokens the client fails with [errors.ErrCodeNoTokens], and when
// every token has been tried with [errors.ErrCodeRateLimited].
//
// # Caching
//
// The repository list, not the weighted result, is cached, so requests that
// differ only in exclusions or weights share one upstream call. Set
// [FetchOptions.Refresh] to bypass the cache.
//
// [toplangs.Usage]: github.com/matzehuels/toplangs/pkg/render/toplangs.Usage
// [errors.ErrCodeNoTokens]: github.com/matzehuels/toplangs/pkg/errors.ErrCodeNoTokens
// [errors.ErrCodeRateLimited]: github.com/matzehuels/toplangs/pkg/errors.ErrCodeRateLimited
package github
