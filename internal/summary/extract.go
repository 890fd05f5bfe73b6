// Package summary turns raw README markdown into a short plain-text teaser.
//
// The heuristic is lossy on purpose: it optimizes for a human-readable
// description of a repository, not a faithful summary of its documentation.
// It must never fail on malformed input.
package summary

import (
	"regexp"
	"strings"

	"github.com/mosamy007/TrendyRepo/internal/constants"
)

// NoDescription is returned when neither a README nor a platform-supplied
// description is available.
const NoDescription = "No description available"

// Config holds the extraction thresholds. The values are inherited from the
// upstream heuristic and have no deeper rationale; they are configuration,
// not law.
type Config struct {
	// MinSentenceLen is the minimum length of a sentence worth keeping.
	MinSentenceLen int

	// TargetLen stops sentence accumulation once the running length
	// exceeds it. The last sentence may overflow; the result is never
	// hard-truncated.
	TargetLen int

	// FallbackThreshold is the minimum usable result length. Below it the
	// platform description is preferred when present.
	FallbackThreshold int
}

// DefaultConfig returns the standard extraction thresholds.
func DefaultConfig() Config {
	return Config{
		MinSentenceLen:    constants.SummaryMinSentenceLen,
		TargetLen:         constants.SummaryTargetLen,
		FallbackThreshold: constants.SummaryFallbackThreshold,
	}
}

var (
	htmlTagRe  = regexp.MustCompile(`<[^>]*>`)
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisRe = regexp.MustCompile(`(\*{1,2}|_{1,2})`)
	imageRe    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Extract produces a teaser using the default thresholds.
func Extract(readme, fallback string) string {
	return DefaultConfig().Extract(readme, fallback)
}

// Extract produces a bounded plain-text teaser from README markdown, falling
// back to the platform-supplied description and finally to NoDescription.
func (c Config) Extract(readme, fallback string) string {
	fallback = strings.TrimSpace(fallback)

	if strings.TrimSpace(readme) == "" {
		if fallback != "" {
			return fallback
		}
		return NoDescription
	}

	cleaned := clean(readme)

	var b strings.Builder
	for _, raw := range sentenceRe.Split(cleaned, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) < c.MinSentenceLen {
			continue
		}
		// Leftover heading underlines and dividers survive cleaning as
		// literal text; they are artifacts, not prose.
		if strings.Contains(sentence, "==") || strings.Contains(sentence, "---") {
			continue
		}
		b.WriteString(sentence)
		b.WriteString(". ")
		if b.Len() > c.TargetLen {
			break
		}
	}

	result := b.String()
	if len(strings.TrimSpace(result)) < c.FallbackThreshold {
		if fallback != "" {
			return fallback
		}
		if strings.TrimSpace(result) != "" {
			return result
		}
		return NoDescription
	}

	return result
}

// clean strips markup and collapses whitespace. Images are removed before
// links so image syntax does not degrade into a stray label.
func clean(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = headingRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "`", "")
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
