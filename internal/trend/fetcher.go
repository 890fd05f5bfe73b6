// Package trend orchestrates the trending-repository fetch cycle: one search
// request followed by paced, strictly sequential enrichment of the top
// results.
package trend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mosamy007/TrendyRepo/internal/cache"
	"github.com/mosamy007/TrendyRepo/internal/constants"
	"github.com/mosamy007/TrendyRepo/internal/gh"
	"github.com/mosamy007/TrendyRepo/internal/log"
	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/summary"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// Client is the transport surface the fetcher depends on.
type Client interface {
	SearchRecent(ctx context.Context, cutoffDate, language string) ([]model.Repository, error)
	Readme(ctx context.Context, owner, repo string) (string, error)
	RepoInfo(ctx context.Context, owner, repo string) (*gh.RepoInfo, error)
	Authenticated() bool
}

// RateLimitError is returned when the search request itself is rejected by
// the platform's rate limiter. The message depends on whether a credential
// was supplied, because the actionable fix differs.
type RateLimitError struct {
	Authenticated bool
}

func (e *RateLimitError) Error() string {
	if e.Authenticated {
		return "GitHub API rate limit exceeded. Please wait a few minutes and try again"
	}
	return "GitHub API rate limit exceeded. Add a personal access token to raise the limit from 60 to 5,000 requests per hour"
}

// SearchError is returned when the search request fails for any reason other
// than rate limiting.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("repository search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// cycleState carries the rate-limit flag for a single fetch cycle. Each cycle
// starts with a clear flag; threading it explicitly keeps unrelated cycles
// from coupling through hidden global state.
type cycleState struct {
	rateLimited bool
}

// markIfRateLimited records a rate-limit classification on the cycle.
func (s *cycleState) markIfRateLimited(err error) {
	if errors.Is(err, gh.ErrRateLimited) {
		s.rateLimited = true
	}
}

// Fetcher drives the full trending fetch cycle.
type Fetcher struct {
	client    Client
	store     *cache.Store
	extractor summary.Config

	// Pacing contract: enrichment call i may not start before
	// i*spacing after the start of the enrichment loop, and call i+1
	// never starts before call i completes.
	spacing     time.Duration
	enrichLimit int

	// Injectable for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	group singleflight.Group
}

// NewFetcher creates a fetcher. The cache store may be nil, in which case
// every lookup goes to the network.
func NewFetcher(client Client, store *cache.Store) *Fetcher {
	return &Fetcher{
		client:      client,
		store:       store,
		extractor:   summary.DefaultConfig(),
		spacing:     constants.EnrichSpacing,
		enrichLimit: constants.EnrichLimit,
		now:         time.Now,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchTrending runs one complete fetch cycle. Concurrent calls with the same
// window and language share a single in-flight cycle; distinct parameter
// pairs may overlap freely. The returned result is a complete, self-contained
// snapshot: callers replace their previous result wholesale.
//
// It fails only when the search request fails, with either *RateLimitError or
// *SearchError. Per-repository enrichment failures degrade to sentinel
// values and never fail the cycle.
func (f *Fetcher) FetchTrending(ctx context.Context, window timewindow.Window, language string) (*model.TrendingResult, error) {
	key := string(window) + "|" + language
	v, err, shared := f.group.Do(key, func() (any, error) {
		return f.fetchCycle(ctx, window, language)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug("fetch cycle shared with concurrent caller", "window", window, "language", language)
	}
	return v.(*model.TrendingResult), nil
}

func (f *Fetcher) fetchCycle(ctx context.Context, window timewindow.Window, language string) (*model.TrendingResult, error) {
	// Fresh cycle, fresh rate-limit state.
	cycle := &cycleState{}

	cutoff := window.CutoffDate(f.now())
	log.Info("fetching trending repositories", "window", window, "language", language, "created_after", cutoff)

	repos, err := f.client.SearchRecent(ctx, cutoff, language)
	if err != nil {
		cycle.markIfRateLimited(err)
		if cycle.rateLimited {
			return nil, &RateLimitError{Authenticated: f.client.Authenticated()}
		}
		return nil, &SearchError{Err: err}
	}

	limit := min(f.enrichLimit, len(repos))
	enrichment := make(map[int64]model.Enrichment, limit)

	// Enrichment is strictly sequential: concurrent calls would multiply
	// the rate-limit consumption rate and risk tripping the limit
	// mid-batch. Delays are measured from the start of this loop, not
	// stacked on top of each call's own duration.
	start := f.now()
	for i := 0; i < limit; i++ {
		if err := f.pace(ctx, start, i); err != nil {
			return nil, &SearchError{Err: err}
		}
		repo := repos[i]
		enrichment[repo.ID] = f.fetchDetails(ctx, cycle, repo)
	}

	if cycle.rateLimited {
		log.Warn("rate limited during enrichment; summaries degraded", "enriched", limit)
	}

	return &model.TrendingResult{
		Repositories: repos,
		Enrichment:   enrichment,
		RateLimited:  cycle.rateLimited,
		FetchedAt:    f.now(),
	}, nil
}

// pace blocks until the scheduled start time of enrichment call index, which
// is index*spacing after the start of the enrichment loop. A call that is
// already past its slot starts immediately.
func (f *Fetcher) pace(ctx context.Context, start time.Time, index int) error {
	target := start.Add(time.Duration(index) * f.spacing)
	if d := target.Sub(f.now()); d > 0 {
		return f.sleep(ctx, d)
	}
	return ctx.Err()
}
