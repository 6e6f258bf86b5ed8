package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/phraseboard/internal/domain/history"
	"github.com/corey/phraseboard/internal/domain/ranker"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// formatSuggestions formats ranked suggestions for terminal display.
//
//	⚡ 3 suggestions for sam
//	  1. I want water   88.0  Used 2 times (2 recently)
func formatSuggestions(user string, suggestions []ranker.Suggestion) string {
	if len(suggestions) == 0 {
		return fmt.Sprintf("%s⚡ no suggestions yet for %s%s (say some phrases first)\n", colorBold, user, colorReset)
	}

	width := 0
	for _, s := range suggestions {
		if n := len([]rune(s.Phrase)); n > width {
			width = n
		}
	}

	var sb strings.Builder
	noun := "suggestions"
	if len(suggestions) == 1 {
		noun = "suggestion"
	}
	sb.WriteString(fmt.Sprintf("%s⚡ %d %s for %s%s\n", colorBold, len(suggestions), noun, user, colorReset))
	for i, s := range suggestions {
		pad := strings.Repeat(" ", width-len([]rune(s.Phrase)))
		sb.WriteString(fmt.Sprintf("  %d. %s%s%s%s  %s%6.1f%s  %s%s%s\n",
			i+1,
			colorCyan, s.Phrase, colorReset, pad,
			colorGreen, s.Score, colorReset,
			colorGray, s.Reason, colorReset))
	}
	return sb.String()
}

// formatEntries formats history entries, oldest first.
// Entries without a timestamp show a dash in the time column.
func formatEntries(entries []history.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d messages%s\n", colorBold, len(entries), colorReset))
	for _, e := range entries {
		stamp := "-------------------"
		if e.HasTimestamp() {
			stamp = e.Timestamp.Format(history.TimestampLayout)
		}
		sb.WriteString(fmt.Sprintf("  %s%s%s  %s\n", colorGray, stamp, colorReset, e.Message))
	}
	return sb.String()
}

// formatMessages formats a plain message list (recent messages).
func formatMessages(hours int, msgs []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d messages in the last %dh%s\n", colorBold, len(msgs), hours, colorReset))
	for _, m := range msgs {
		sb.WriteString(fmt.Sprintf("  %s\n", m))
	}
	return sb.String()
}
