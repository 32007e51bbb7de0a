package github

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/matzehuels/toplangs/pkg/cache"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/httputil"
	"github.com/matzehuels/toplangs/pkg/integrations"
	"github.com/matzehuels/toplangs/pkg/observability"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// DefaultEndpoint is the public GitHub GraphQL API.
const DefaultEndpoint = "https://api.github.com/graphql"

// Backoff bounds between token attempts.
const (
	backoffBase  = 300 * time.Millisecond
	backoffLimit = 10 * time.Second
)

const languagesQuery = `query userInfo($login: String!) {
  user(login: $login) {
    repositories(ownerAffiliations: OWNER, isFork: false, first: 100) {
      nodes {
        name
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              color
              name
            }
          }
        }
      }
    }
  }
}`

// Upstream messages that mean the token, not the request, is at fault.
const (
	msgBadCredentials   = "Bad credentials"
	msgAccountSuspended = "Sorry. Your account was suspended."
)

var rateLimitPattern = regexp.MustCompile(`(?i)rate limit`)

// Client fetches language statistics from the GitHub GraphQL API. It holds
// a list of personal access tokens and rotates through them when one is
// rate limited or rejected.
type Client struct {
	*integrations.Client
	endpoint string
	tokens   []string
	backoff  func(attempt int) time.Duration
}

// NewClient creates a GitHub client. Responses are cached in c for ttl; a
// nil cache disables caching. An empty endpoint selects [DefaultEndpoint].
func NewClient(c cache.Cache, tokens []string, endpoint string, ttl time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Client:   integrations.NewClient(c, cache.NewDefaultKeyer().HTTPKey("github", ""), ttl, nil),
		endpoint: endpoint,
		tokens:   tokens,
		backoff: func(attempt int) time.Duration {
			return httputil.Backoff(attempt, backoffBase, backoffLimit)
		},
	}
}

// Tokens reports how many tokens the client can rotate through.
func (c *Client) Tokens() int { return len(c.tokens) }

// FetchTopLanguages returns the weighted language usage across the user's
// owned, non-fork repositories.
func (c *Client) FetchTopLanguages(ctx context.Context, username string, opts FetchOptions) (toplangs.Usage, error) {
	repos, err := c.FetchRepositories(ctx, username, opts.Refresh)
	if err != nil {
		return nil, err
	}
	return Aggregate(repos, opts), nil
}

// FetchRepositories returns the user's repositories with their languages.
// If refresh is true, cached data is bypassed.
func (c *Client) FetchRepositories(ctx context.Context, username string, refresh bool) ([]Repository, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}
	var repos []Repository
	err := c.Cached(ctx, "languages:"+strings.ToLower(username), refresh, &repos, func() error {
		var resp languagesResponse
		if err := c.query(ctx, map[string]any{"login": username}, &resp); err != nil {
			return err
		}
		if err := responseError(&resp); err != nil {
			return err
		}
		repos = resp.repositories()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}

// query posts languagesQuery with the first usable token. A token is
// abandoned when GitHub reports it rate limited, revoked, or suspended;
// the next one is tried after a backoff.
func (c *Client) query(ctx context.Context, vars map[string]any, out *languagesResponse) error {
	if len(c.tokens) == 0 {
		return errors.New(errors.ErrCodeNoTokens, "No GitHub API tokens found")
	}

	req := graphQLRequest{Query: languagesQuery, Variables: vars}
	for attempt, token := range c.tokens {
		*out = languagesResponse{}
		headers := map[string]string{"Authorization": "bearer " + token}
		err := c.PostJSON(ctx, c.endpoint, headers, req, out)

		reason := ""
		var se *integrations.StatusError
		switch {
		case stderrors.As(err, &se) && se.Message == msgBadCredentials:
			reason = "bad credentials"
		case stderrors.As(err, &se) && se.Message == msgAccountSuspended:
			reason = "account suspended"
		case isTimeout(err):
			return errors.Wrap(errors.ErrCodeTimeout, permanent(err), "GitHub API request timed out")
		case stderrors.As(err, &se) && se.Code == http.StatusUnauthorized:
			return errors.Wrap(errors.ErrCodeUnauthorized, err, "GitHub API rejected the token")
		case err != nil:
			return errors.Wrap(errors.ErrCodeNetwork, err, "GitHub API request failed")
		case out.rateLimited():
			reason = "rate limited"
		default:
			return nil
		}

		observability.Pipeline().OnTokenRotate(ctx, attempt, reason)
		if attempt == len(c.tokens)-1 {
			break
		}
		if err := httputil.Sleep(ctx, c.backoff(attempt)); err != nil {
			return err
		}
	}
	return errors.New(errors.ErrCodeRateLimited, "Downtime due to GitHub API rate limiting")
}

// permanent unwraps a retryable error so the retry loop gives up on it.
func permanent(err error) error {
	var re *httputil.RetryableError
	if stderrors.As(err, &re) {
		return re.Err
	}
	return err
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrors.As(err, &ne) && ne.Timeout()
}

func (r *languagesResponse) rateLimited() bool {
	if len(r.Errors) == 0 {
		return false
	}
	first := r.Errors[0]
	return first.Type == "RATE_LIMITED" || rateLimitPattern.MatchString(first.Message)
}

// responseError maps GraphQL errors to coded errors.
func responseError(r *languagesResponse) error {
	if len(r.Errors) > 0 {
		first := r.Errors[0]
		if first.Type == "NOT_FOUND" {
			msg := first.Message
			if msg == "" {
				msg = "Could not fetch user."
			}
			return errors.New(errors.ErrCodeUserNotFound, "%s", msg)
		}
		if first.Message != "" {
			return errors.New(errors.ErrCodeGraphQL, "%s", first.Message)
		}
	}
	if len(r.Errors) > 0 || r.Data.User == nil {
		return errors.New(errors.ErrCodeGraphQL,
			"Something went wrong while trying to retrieve the language data using the GraphQL API.")
	}
	return nil
}
