package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suhas-13/fatebook-mcp/internal/fatebook"
	"github.com/Suhas-13/fatebook-mcp/internal/match"
)

type SearchPredictionsArgs struct {
	Description string `json:"description" jsonschema:"Description to search for in prediction titles"`
	Threshold   int    `json:"threshold" jsonschema:"Minimum similarity score (0-100, default: 60)"`
}

// buildSearchPredictions resolves a free-text description to questions by
// fuzzy title similarity and shows the top two matches.
func buildSearchPredictions(ctx context.Context, svc predictionService, args SearchPredictionsArgs) string {
	if args.Description == "" {
		return "Please provide a description to search for."
	}
	threshold := args.Threshold
	if threshold <= 0 {
		threshold = 60
	}

	questions := svc.Questions(ctx, fatebook.Filter{Limit: 100})
	titles := make([]string, len(questions))
	for i, q := range questions {
		titles[i] = q.Title
	}
	matches := match.Rank(args.Description, titles, threshold)
	if len(matches) > 2 {
		matches = matches[:2]
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No predictions found matching '%s'.", args.Description)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d predictions matching '%s':\n\n", len(matches), args.Description)
	for i, m := range matches {
		q := questions[m.Index]
		latest := "No forecast"
		if f := q.Latest(); f != nil {
			latest = f.Forecast.Display()
		}
		fmt.Fprintf(&sb, "%d. **%s** (Match: %d%%)\n", i+1, orDefault(q.Title, "No title"), m.Score)
		fmt.Fprintf(&sb, "   ID: %s\n", orDefault(q.ID, "No ID"))
		fmt.Fprintf(&sb, "   Current forecast: %s\n\n", latest)
	}
	return sb.String()
}
