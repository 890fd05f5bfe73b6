// Package output renders trending results for non-interactive use.
package output

import (
	"io"

	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(result *model.TrendingResult, window timewindow.Window, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format. A limit of zero
// means all fetched repositories are rendered.
func NewFormatter(format Format, limit int) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Limit: limit}
	case FormatMarkdown:
		return &MarkdownFormatter{Limit: limit}
	default:
		return &TableFormatter{Limit: limit}
	}
}

// limitRepos caps the repository slice at limit when limit is positive.
func limitRepos(repos []model.Repository, limit int) []model.Repository {
	if limit > 0 && len(repos) > limit {
		return repos[:limit]
	}
	return repos
}
