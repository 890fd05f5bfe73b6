package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mosamy007/TrendyRepo/internal/format"
	"github.com/mosamy007/TrendyRepo/internal/model"
)

// Lines reserved above and below the repository list.
const (
	headerLines = 3
	footerLines = 4
	// Every row renders a summary line beneath it, so the scroll window
	// budgets two lines per repository.
	linesPerRow = 2
)

// renderView renders the complete trending browser view.
func renderView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	if m.fetchErr != nil {
		b.WriteString(errorStyle.Render(m.fetchErr.Error()))
		b.WriteString("\n")
		b.WriteString(headerDimStyle.Render("press r to retry"))
		b.WriteString("\n\n")
	}

	repos := m.visibleRepos()

	switch {
	case m.loading && m.result == nil:
		b.WriteString(m.spin.View())
		b.WriteString(" Fetching trending repositories...")
		b.WriteString("\n")

	case len(repos) == 0 && m.fetchErr == nil:
		if m.filter != "" {
			b.WriteString(emptyStyle.Render("No repositories match the filter."))
		} else {
			b.WriteString(emptyStyle.Render("No trending repositories found."))
		}
		b.WriteString("\n")

	default:
		renderRepoList(&b, m, repos)
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m))

	return b.String()
}

// renderHeader renders the title line with window, language, and auth state.
func renderHeader(m Model) string {
	var parts []string

	title := fmt.Sprintf("Trending repositories (%s)", m.window.Label())
	parts = append(parts, titleStyle.Render(title))

	if m.language != "" {
		parts = append(parts, langStyle.Render(m.language))
	}
	if m.filter != "" {
		parts = append(parts, headerDimStyle.Render("filter: "+m.filter))
	}

	if m.loading {
		parts = append(parts, m.spin.View())
	}

	auth := "anonymous"
	if m.app.Authenticated != nil && m.app.Authenticated() {
		auth = "authenticated"
	}
	parts = append(parts, headerDimStyle.Render(auth))

	if m.result != nil && m.result.RateLimited {
		parts = append(parts, warnStyle.Render("rate limited"))
	}

	return strings.Join(parts, "  ·  ")
}

// renderRepoList renders the scrollable repository list.
func renderRepoList(b *strings.Builder, m Model, repos []model.Repository) {
	available := (m.windowHeight - headerLines - footerLines) / linesPerRow
	if available < 1 {
		available = 1
	}

	start, end := scrollWindow(m.cursor, len(repos), available)

	for i := start; i < end; i++ {
		selected := i == m.cursor
		b.WriteString(renderRow(m, repos[i], i+1, selected))
		b.WriteString("\n")
		b.WriteString(renderSummaryLine(m, repos[i], selected))
		b.WriteString("\n")
	}
}

// renderRow renders a single repository line.
func renderRow(m Model, repo model.Repository, rank int, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	nameCol := nameColWidth(m)
	name := format.PadRight(format.TruncateToWidth(repo.FullName, nameCol), nameCol)
	stars := fmt.Sprintf("%6s", format.Count(repo.Stars))
	lang := repo.Language
	if lang == "" {
		lang = "-"
	}
	lang = format.PadRight(format.TruncateToWidth(lang, 10), 10)
	age := format.Age(time.Since(repo.CreatedAt))

	if selected {
		return selectedStyle.Render(fmt.Sprintf("%s%2d  %s  %s  %s  %s", cursor, rank, name, stars, lang, age))
	}
	return fmt.Sprintf("%s%2d  %s  %s  %s  %s", cursor, rank,
		repoNameStyle.Render(name), starStyle.Render(stars), langStyle.Render(lang), age)
}

// renderSummaryLine renders the dim summary beneath a repository row. Topics
// are appended only on the selected row to keep the list quiet.
func renderSummaryLine(m Model, repo model.Repository, selected bool) string {
	const indent = "      "

	var summary string
	if m.result != nil {
		if e, ok := m.result.Enriched(repo.ID); ok {
			summary = strings.TrimSpace(e.Summary)
			if selected && len(e.Topics) > 0 {
				summary += "  " + topicStyle.Render("#"+strings.Join(e.Topics, " #"))
			}
		}
	}
	if summary == "" {
		summary = strings.TrimSpace(repo.Description)
	}
	if summary == "" {
		return indent
	}

	summary = format.TruncateToWidth(summary, m.windowWidth-len(indent))
	return indent + summaryStyle.Render(summary)
}

// renderFooter renders the input line, status message, and key help.
func renderFooter(m Model) string {
	var b strings.Builder

	if m.mode != modeList {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: nav   enter: open   /: filter   1/2/3: window   l: language   t: token   r: refresh   q: quit"))
	return b.String()
}

// nameColWidth returns the width available for the repository name column.
func nameColWidth(m Model) int {
	// rank, stars, language, and age columns plus separators
	w := m.windowWidth - 34
	if w < 20 {
		w = 20
	}
	return w
}

// scrollWindow keeps the cursor centered in the visible slice of rows.
func scrollWindow(cursor, total, viewHeight int) (start, end int) {
	if total <= viewHeight {
		return 0, total
	}

	start = cursor - viewHeight/2
	if start < 0 {
		start = 0
	}

	end = start + viewHeight
	if end > total {
		end = total
		start = end - viewHeight
		if start < 0 {
			start = 0
		}
	}

	return start, end
}
