// Package integrations provides HTTP clients for upstream APIs.
//
// # Overview
//
// The only upstream is GitHub, in the [github] subpackage, which fetches the
// repositories and languages behind a top-languages card.
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by API clients:
//
//   - JSON GET and POST with default and per-request headers
//   - status classification: 404 becomes [ErrNotFound], 5xx and transport
//     failures are marked retryable, everything else is a [*StatusError]
//   - response caching through a [cache.Cache] with a key prefix and TTL
//   - retry with backoff around cached fetches
//
// Usage:
//
//	client := integrations.NewClient(c, "github:", time.Hour, nil)
//	err := client.Cached(ctx, key, refresh, &v, func() error {
//	    return client.PostJSON(ctx, url, headers, query, &v)
//	})
//
// [github]: github.com/matzehuels/toplangs/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/toplangs/pkg/cache.Cache
package integrations
