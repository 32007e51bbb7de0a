// Package httputil provides HTTP helpers shared by the upstream API
// clients.
//
// # Retry
//
// [Retry] wraps calls with automatic retry for transient failures. Only
// errors marked with [Retryable] are retried:
//
//   - Network errors
//   - 5xx server errors
//   - Rate limit responses
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// [Backoff] computes exponentially growing delays with jitter, used by
// callers that drive their own retry loop (for example rotating API
// tokens between attempts).
package httputil
