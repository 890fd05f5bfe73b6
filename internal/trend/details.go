package trend

import (
	"context"
	"errors"
	"fmt"

	"github.com/mosamy007/TrendyRepo/internal/gh"
	"github.com/mosamy007/TrendyRepo/internal/log"
	"github.com/mosamy007/TrendyRepo/internal/model"
)

// fetchDetails enriches a single repository with a summary and topics. Both
// the README and the metadata lookups are attempted even if one fails, and
// every internal failure degrades to sentinel values: partial enrichment is
// always preferable to failing the whole trend listing.
func (f *Fetcher) fetchDetails(ctx context.Context, cycle *cycleState, repo model.Repository) model.Enrichment {
	readme, readmeOK := f.readme(ctx, cycle, repo.Owner, repo.Name)
	info, infoOK := f.repoInfo(ctx, cycle, repo.Owner, repo.Name)

	// The metadata description is fresher than the search row's copy, but
	// either works as extraction fallback.
	fallback := repo.Description
	if infoOK && info.Description != "" {
		fallback = info.Description
	}

	enrichment := model.Enrichment{
		Summary:         f.extractor.Extract(readme, fallback),
		ReadmeAvailable: readmeOK,
	}
	if infoOK {
		enrichment.Topics = info.Topics
	}
	return enrichment
}

// readme performs the cache-first README lookup. Absence, whether from a 404,
// a transport failure, or a rate limit, is not an error: the README is an
// optional input.
func (f *Fetcher) readme(ctx context.Context, cycle *cycleState, owner, repo string) (string, bool) {
	key := fmt.Sprintf("readme:%s:%s", owner, repo)

	var text string
	if f.store.GetJSON(key, &text) {
		log.Debug("readme cache hit", "repo", owner+"/"+repo)
		return text, true
	}

	text, err := f.client.Readme(ctx, owner, repo)
	if err != nil {
		cycle.markIfRateLimited(err)
		if !errors.Is(err, gh.ErrNotFound) {
			log.Debug("readme fetch failed", "repo", owner+"/"+repo, "error", err)
		}
		return "", false
	}

	f.store.SetJSON(key, text)
	return text, true
}

// repoInfo performs the cache-first metadata lookup.
func (f *Fetcher) repoInfo(ctx context.Context, cycle *cycleState, owner, repo string) (*gh.RepoInfo, bool) {
	key := fmt.Sprintf("info:%s:%s", owner, repo)

	var info gh.RepoInfo
	if f.store.GetJSON(key, &info) {
		log.Debug("repo info cache hit", "repo", owner+"/"+repo)
		return &info, true
	}

	fetched, err := f.client.RepoInfo(ctx, owner, repo)
	if err != nil {
		cycle.markIfRateLimited(err)
		log.Debug("repo info fetch failed", "repo", owner+"/"+repo, "error", err)
		return nil, false
	}

	f.store.SetJSON(key, fetched)
	return fetched, true
}
