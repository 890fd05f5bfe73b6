package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mosamy007/TrendyRepo/internal/format"
	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// MarkdownFormatter formats trending results as a Markdown document suitable
// for pasting into issues or reports.
type MarkdownFormatter struct {
	Limit int
}

// Format outputs trending repositories as Markdown.
func (f *MarkdownFormatter) Format(result *model.TrendingResult, window timewindow.Window, w io.Writer) error {
	repos := limitRepos(result.Repositories, f.Limit)

	fmt.Fprintf(w, "# Trending repositories (%s)\n\n", window.Label())
	fmt.Fprintf(w, "_Fetched %s_\n\n", result.FetchedAt.Format(time.RFC1123))

	if len(repos) == 0 {
		fmt.Fprintln(w, "No trending repositories found.")
		return nil
	}

	if result.RateLimited {
		fmt.Fprintln(w, "> Rate limit hit during enrichment; some summaries are unavailable.")
		fmt.Fprintln(w)
	}

	for i, repo := range repos {
		fmt.Fprintf(w, "## %d. [%s](%s)\n\n", i+1, repo.FullName, repo.HTMLURL)

		details := []string{fmt.Sprintf("⭐ %s", format.Count(repo.Stars))}
		if repo.Language != "" {
			details = append(details, repo.Language)
		}
		details = append(details, fmt.Sprintf("created %s", repo.CreatedAt.Format("2006-01-02")))
		fmt.Fprintf(w, "%s\n\n", strings.Join(details, " · "))

		if e, ok := result.Enriched(repo.ID); ok {
			fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(e.Summary))
			if len(e.Topics) > 0 {
				fmt.Fprintf(w, "Topics: %s\n\n", strings.Join(e.Topics, ", "))
			}
		} else if repo.Description != "" {
			fmt.Fprintf(w, "%s\n\n", repo.Description)
		}
	}

	return nil
}
