package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mosamy007/TrendyRepo/internal/format"
	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// TableFormatter formats trending results as a terminal table.
type TableFormatter struct {
	Limit int
}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// Format outputs trending repositories as a table.
func (f *TableFormatter) Format(result *model.TrendingResult, window timewindow.Window, w io.Writer) error {
	repos := limitRepos(result.Repositories, f.Limit)
	if len(repos) == 0 {
		fmt.Fprintln(w, "No trending repositories found.")
		return nil
	}

	fmt.Fprintf(w, "Trending repositories (%s)\n", window.Label())
	if result.RateLimited {
		fmt.Fprintln(w, color.YellowString("Rate limit hit during enrichment; some summaries are unavailable."))
	}
	fmt.Fprintln(w)

	// Column widths
	const (
		colRank  = 3
		colRepo  = 34
		colStars = 7
		colLang  = 12
		colAge   = 5
	)

	// Header
	fmt.Fprintf(w, "%-*s  %-*s  %*s  %-*s  %s\n",
		colRank, "#",
		colRepo, "Repository",
		colStars, "Stars",
		colLang, "Language",
		"Age")
	fmt.Fprintln(w, strings.Repeat("-", colRank+colRepo+colStars+colLang+colAge+10))

	for i, repo := range repos {
		name := format.TruncateToWidth(repo.FullName, colRepo)
		linked := hyperlink(name, repo.HTMLURL)
		linked = linked + strings.Repeat(" ", colRepo-format.DisplayWidth(name))

		lang := repo.Language
		if lang == "" {
			lang = "-"
		}
		lang = format.TruncateToWidth(lang, colLang)

		stars := color.YellowString("%*s", colStars, format.Count(repo.Stars))

		fmt.Fprintf(w, "%-*d  %s  %s  %-*s  %s\n",
			colRank, i+1,
			linked,
			stars,
			colLang, lang,
			format.Age(time.Since(repo.CreatedAt)),
		)

		// Summary line under each enriched row
		if e, ok := result.Enriched(repo.ID); ok {
			summary := format.TruncateToWidth(strings.TrimSpace(e.Summary), colRepo+colStars+colLang+colAge)
			fmt.Fprintf(w, "%-*s  %s\n", colRank, "", color.HiBlackString(summary))
			if len(e.Topics) > 0 {
				fmt.Fprintf(w, "%-*s  %s\n", colRank, "", color.CyanString(formatTopics(e.Topics)))
			}
		}
	}

	printFooter(result, repos, w)

	return nil
}

// formatTopics renders up to five topics as a compact tag list.
func formatTopics(topics []string) string {
	const maxShown = 5
	shown := topics
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	parts := make([]string, 0, len(shown))
	for _, t := range shown {
		parts = append(parts, "#"+t)
	}
	s := strings.Join(parts, " ")
	if len(topics) > maxShown {
		s = fmt.Sprintf("%s (+%d more)", s, len(topics)-maxShown)
	}
	return s
}

// printFooter prints the summary footer below the table.
func printFooter(result *model.TrendingResult, repos []model.Repository, w io.Writer) {
	enriched := 0
	for _, repo := range repos {
		if _, ok := result.Enriched(repo.ID); ok {
			enriched++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d repositories, %d summarized, fetched %s\n",
		len(repos), enriched, result.FetchedAt.Format(time.Kitchen))
}
