package trend

import (
	"context"
	"testing"

	"github.com/mosamy007/TrendyRepo/internal/gh"
	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/summary"
)

func TestFetchDetailsFromReadme(t *testing.T) {
	client := &fakeClient{
		readmes: map[string]string{
			"alice/rocket": "# rocket\n\nLaunches small payloads into orbit with minimal fuss.",
		},
		infos: map[string]*gh.RepoInfo{
			"alice/rocket": {Description: "a launcher", Topics: []string{"space", "go"}},
		},
	}
	f, _ := newTestFetcher(t, client)

	e := f.fetchDetails(context.Background(), &cycleState{}, model.Repository{
		ID: 1, Owner: "alice", Name: "rocket",
	})

	if !e.ReadmeAvailable {
		t.Error("expected README to be reported available")
	}
	if e.Summary == "" || e.Summary == summary.NoDescription {
		t.Errorf("expected README-derived summary, got %q", e.Summary)
	}
	if len(e.Topics) != 2 || e.Topics[0] != "space" || e.Topics[1] != "go" {
		t.Errorf("unexpected topics: %v", e.Topics)
	}
}

func TestFetchDetailsReadmeMissing(t *testing.T) {
	client := &fakeClient{
		infos: map[string]*gh.RepoInfo{
			"alice/quiet": {Description: "a repo with no README"},
		},
	}
	f, _ := newTestFetcher(t, client)

	e := f.fetchDetails(context.Background(), &cycleState{}, model.Repository{
		ID: 2, Owner: "alice", Name: "quiet",
	})

	if e.ReadmeAvailable {
		t.Error("README reported available despite 404")
	}
	if e.Summary != "a repo with no README" {
		t.Errorf("expected fallback description, got %q", e.Summary)
	}
}

func TestFetchDetailsEverythingFails(t *testing.T) {
	client := &fakeClient{
		readmeErrs: map[string]error{"alice/gone": gh.ErrNotFound},
		infoErrs:   map[string]error{"alice/gone": gh.ErrNotFound},
	}
	f, _ := newTestFetcher(t, client)

	e := f.fetchDetails(context.Background(), &cycleState{}, model.Repository{
		ID: 3, Owner: "alice", Name: "gone",
	})

	if e.Summary != summary.NoDescription {
		t.Errorf("expected sentinel summary, got %q", e.Summary)
	}
	if e.ReadmeAvailable || len(e.Topics) != 0 {
		t.Errorf("expected fully degraded enrichment, got %+v", e)
	}
}

func TestFetchDetailsSearchDescriptionAsLastFallback(t *testing.T) {
	// Metadata lookup fails but the search row carried a description
	client := &fakeClient{
		infoErrs: map[string]error{"alice/partial": gh.ErrRateLimited},
	}
	f, _ := newTestFetcher(t, client)

	cycle := &cycleState{}
	e := f.fetchDetails(context.Background(), cycle, model.Repository{
		ID: 4, Owner: "alice", Name: "partial", Description: "search row description",
	})

	if e.Summary != "search row description" {
		t.Errorf("expected search description fallback, got %q", e.Summary)
	}
	if !cycle.rateLimited {
		t.Error("expected cycle rate-limit flag after rate-limited metadata lookup")
	}
}

func TestFetchDetailsBothLookupsAttempted(t *testing.T) {
	// A failing README must not short-circuit the metadata lookup
	client := &fakeClient{
		readmeErrs: map[string]error{"alice/half": gh.ErrRateLimited},
		infos: map[string]*gh.RepoInfo{
			"alice/half": {Description: "still reachable", Topics: []string{"resilience"}},
		},
	}
	f, _ := newTestFetcher(t, client)

	e := f.fetchDetails(context.Background(), &cycleState{}, model.Repository{
		ID: 5, Owner: "alice", Name: "half",
	})

	if client.infoCalls != 1 {
		t.Errorf("expected metadata lookup despite README failure, got %d calls", client.infoCalls)
	}
	if e.Summary != "still reachable" || len(e.Topics) != 1 {
		t.Errorf("unexpected enrichment: %+v", e)
	}
}
