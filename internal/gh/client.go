// Package gh wraps the GitHub REST API used by the trending pipeline.
//
// Every response is classified into one of four outcomes: success, not-found,
// rate-limited, or failure. Callers branch on the ErrRateLimited and
// ErrNotFound sentinels instead of inspecting HTTP details.
package gh

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	gogithub "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/mosamy007/TrendyRepo/internal/constants"
	"github.com/mosamy007/TrendyRepo/internal/log"
	"github.com/mosamy007/TrendyRepo/internal/model"
)

// ErrRateLimited is returned when the GitHub API rate limit has been exceeded.
var ErrRateLimited = errors.New("rate limited")

// ErrNotFound is returned when a requested resource does not exist. README
// lookups treat this as an expected outcome, not a failure.
var ErrNotFound = errors.New("not found")

// RepoInfo is the subset of repository metadata the enrichment pipeline needs.
type RepoInfo struct {
	Description string   `json:"description"`
	Topics      []string `json:"topics"` // platform order preserved
}

// observeTransport watches rate limit headers on every response so that an
// approaching limit is visible before it trips.
type observeTransport struct {
	base http.RoundTripper
}

func (t *observeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	if remainingStr := resp.Header.Get("X-RateLimit-Remaining"); remainingStr != "" {
		if remaining, convErr := strconv.Atoi(remainingStr); convErr == nil && remaining <= constants.RateLimitLowWatermark {
			log.Debug("rate limit low", "remaining", remaining, "url", req.URL.Path)
		}
	}

	return resp, err
}

// Client wraps the GitHub API client. The zero credential is valid: requests
// are then anonymous and subject to the much lower unauthenticated ceiling.
type Client struct {
	client *gogithub.Client
	// token is intentionally unexported. NEVER add String(), MarshalJSON(),
	// or any method that could expose this value in logs or serialized output.
	token string
}

// NewClient creates a GitHub client. An empty token produces an anonymous
// client; a non-empty token is attached as a bearer credential.
func NewClient(ctx context.Context, token string) *Client {
	var hc *http.Client

	if token == "" {
		hc = &http.Client{
			Transport: &observeTransport{},
		}
	} else {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		hc = oauth2.NewClient(ctx, ts)
		hc.Transport = &observeTransport{base: hc.Transport}
	}

	// Bound every request; the platform default is no timeout at all.
	hc.Timeout = constants.RequestTimeout

	return &Client{
		client: gogithub.NewClient(hc),
		token:  token,
	}
}

// Authenticated reports whether a credential was supplied. It changes only
// the request's authorization header and the rate-limit ceiling mentioned in
// error messages.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// classify maps a go-github error onto the package's outcome sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: resets at %s", ErrRateLimited, rateErr.Rate.Reset.Time.Format(time.Kitchen))
	}
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: secondary limit", ErrRateLimited)
	}

	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusForbidden, http.StatusTooManyRequests:
			return fmt.Errorf("%w: HTTP %d", ErrRateLimited, respErr.Response.StatusCode)
		case http.StatusNotFound:
			return ErrNotFound
		}
	}

	return err
}

// SearchRecent searches repositories created after the cutoff date, sorted by
// star count descending, capped at a single page of results. The language
// qualifier is added only when non-empty.
func (c *Client) SearchRecent(ctx context.Context, cutoffDate, language string) ([]model.Repository, error) {
	query := fmt.Sprintf("created:>%s", cutoffDate)
	if language != "" {
		query = fmt.Sprintf("%s language:%s", query, language)
	}

	opts := &gogithub.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: gogithub.ListOptions{
			PerPage: constants.SearchPerPage,
		},
	}

	log.Debug("searching repositories", "query", query)
	result, _, err := c.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, classify(err)
	}

	repos := make([]model.Repository, 0, len(result.Repositories))
	for _, item := range result.Repositories {
		repos = append(repos, model.Repository{
			ID:          item.GetID(),
			Owner:       item.GetOwner().GetLogin(),
			Name:        item.GetName(),
			FullName:    item.GetFullName(),
			Description: item.GetDescription(),
			Stars:       item.GetStargazersCount(),
			Forks:       item.GetForksCount(),
			Language:    item.GetLanguage(),
			HTMLURL:     item.GetHTMLURL(),
			AvatarURL:   item.GetOwner().GetAvatarURL(),
			CreatedAt:   item.GetCreatedAt().Time,
		})
	}

	return repos, nil
}

// RateLimits fetches the current quota for the core and search APIs.
func (c *Client) RateLimits(ctx context.Context) (*gogithub.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return limits, nil
}

// Readme fetches a repository's README as decoded plain text.
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, error) {
	content, _, err := c.client.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return "", classify(err)
	}

	// GetContent decodes the base64 body the README endpoint returns.
	text, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode README for %s/%s: %w", owner, repo, err)
	}
	return text, nil
}

// RepoInfo fetches a repository's description and topic list.
func (c *Client) RepoInfo(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	repository, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, classify(err)
	}

	return &RepoInfo{
		Description: repository.GetDescription(),
		Topics:      repository.Topics,
	}, nil
}
