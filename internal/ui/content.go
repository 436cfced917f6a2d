package ui

import (
	"strings"

	"floatbar/internal/domain"
	"floatbar/internal/ui/views"
)

// buildContent renders the feed entries to plain lines and records which
// entry each line belongs to, so the pager can open whatever sits at the
// top of the content window.
func buildContent(entries []domain.FeedEntry, width int, styles *views.Styles) (lines []string, lineEntry []int) {
	if width < 10 {
		width = 10
	}

	for _, entry := range entries {
		add := func(line string) {
			lines = append(lines, line)
			lineEntry = append(lineEntry, entry.Index)
		}

		add(styles.EntryTitle.Render(entry.Title))
		add(styles.EntryDate.Render(entry.Date.Format("Mon, 02 Jan 2006")))
		for _, para := range entry.Body {
			for _, line := range wrapWords(para, width-2) {
				add("  " + styles.Body.Render(line))
			}
		}
		add("")
	}
	return lines, lineEntry
}

// wrapWords greedily wraps text at word boundaries
func wrapWords(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			out = append(out, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		out = append(out, line.String())
	}
	return out
}
