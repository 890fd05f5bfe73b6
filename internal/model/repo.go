// Package model defines the core data types shared across the trendyrepo
// application.
package model

import "time"

// Repository is a single repository row from the search response.
// Fields are immutable once received; one instance per result row for the
// lifetime of a single search result set.
type Repository struct {
	ID          int64     `json:"id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	FullName    string    `json:"fullName"`
	Description string    `json:"description,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Language    string    `json:"language,omitempty"`
	HTMLURL     string    `json:"htmlUrl"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Enrichment holds the per-repository data produced by the detail fetcher.
// It is never mutated after creation; a new search cycle replaces the whole
// enrichment map wholesale.
type Enrichment struct {
	Summary         string   `json:"summary"`
	Topics          []string `json:"topics,omitempty"` // platform order preserved
	ReadmeAvailable bool     `json:"readmeAvailable"`
}

// TrendingResult is the complete output of one fetch cycle: the full result
// sequence in star-descending order plus the enrichment map keyed by
// repository ID. Repositories beyond the enrichment bound appear in
// Repositories but have no entry in Enrichment.
type TrendingResult struct {
	Repositories []Repository         `json:"repositories"`
	Enrichment   map[int64]Enrichment `json:"enrichment"`
	RateLimited  bool                 `json:"rateLimited,omitempty"` // enrichment hit the rate limit mid-cycle
	FetchedAt    time.Time            `json:"fetchedAt"`
}

// Enriched returns the enrichment for a repository, or the zero value when
// the repository was outside the enriched subset.
func (r *TrendingResult) Enriched(id int64) (Enrichment, bool) {
	e, ok := r.Enrichment[id]
	return e, ok
}
