// Package constants provides a centralized location for all configuration
// values and magic numbers used throughout the trendyrepo application.
package constants

import "time"

// Search constants
const (
	// SearchPerPage is the number of repositories requested from the
	// search endpoint. A single page is fetched; there is no pagination.
	SearchPerPage = 30

	// EnrichLimit is the number of top-ranked search results that receive
	// README/metadata enrichment. Enrichment is expensive and rate-limit
	// sensitive, so only the head of the result set is enriched.
	EnrichLimit = 6

	// EnrichSpacing is the minimum delay between the scheduled start times
	// of consecutive enrichment calls within one fetch cycle. Call i waits
	// until i*EnrichSpacing after the start of the enrichment loop.
	EnrichSpacing = 100 * time.Millisecond
)

// Cache constants
const (
	// CacheTTL is the maximum age of a cached README or repository-info
	// payload. Entries older than this are treated as absent and evicted
	// on read.
	CacheTTL = 5 * time.Minute
)

// Transport constants
const (
	// RequestTimeout bounds every HTTP request issued to the GitHub API.
	RequestTimeout = 30 * time.Second

	// RateLimitLowWatermark is the remaining-request threshold below which
	// rate limit warnings are logged.
	RateLimitLowWatermark = 10
)

// Summary extraction constants. These mirror the upstream heuristic; see
// summary.DefaultConfig.
const (
	// SummaryMinSentenceLen is the minimum sentence length considered
	// meaningful when accumulating the teaser text.
	SummaryMinSentenceLen = 20

	// SummaryTargetLen is the running-length threshold after which no
	// further sentences are accumulated. The last accumulated sentence may
	// overflow it; the result is never hard-truncated.
	SummaryTargetLen = 200

	// SummaryFallbackThreshold is the minimum usable teaser length. Below
	// it the platform-supplied description is preferred when present.
	SummaryFallbackThreshold = 30
)

// Display constants
const (
	// TruncationSuffixWidth is the width of the "..." suffix when truncating strings.
	TruncationSuffixWidth = 3
)
