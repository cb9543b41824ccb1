package main

import (
	"fmt"
	"strings"

	"github.com/Suhas-13/fatebook-mcp/internal/fatebook"
)

// orDefault substitutes the fixed fallback string for an absent field.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func authorName(u *fatebook.User) string {
	if u == nil || u.Name == "" {
		return "Unknown author"
	}
	return u.Name
}

func statusLabel(resolved bool) string {
	if resolved {
		return "Resolved"
	}
	return "Open"
}

// questionSummary renders one numbered entry of a listing. withStatus adds
// the Resolved/Open line used by the filtered listing.
func questionSummary(sb *strings.Builder, i int, q fatebook.Question, withStatus bool) {
	latest := "No forecast"
	forecaster := ""
	if f := q.Latest(); f != nil {
		latest = f.Forecast.Display()
		if f.User != nil {
			name := f.User.Name
			if name == "" {
				name = "unknown"
			}
			forecaster = fmt.Sprintf(" (by %s)", name)
		}
	}
	fmt.Fprintf(sb, "%d. **%s**\n", i, orDefault(q.Title, "No title"))
	fmt.Fprintf(sb, "   Author: %s\n", authorName(q.User))
	fmt.Fprintf(sb, "   ID: %s\n", orDefault(q.ID, "No ID"))
	fmt.Fprintf(sb, "   Latest forecast: %s%s\n", latest, forecaster)
	if withStatus {
		fmt.Fprintf(sb, "   Status: %s\n", statusLabel(q.Resolved))
	}
	fmt.Fprintf(sb, "   Resolves by: %s\n", orDefault(q.ResolveBy, "No resolution date"))
	fmt.Fprintf(sb, "   Created: %s\n\n", orDefault(q.CreatedDate, "Unknown date"))
}
