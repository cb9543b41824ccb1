package main

import (
	"context"
	"fmt"
	"strings"
)

type GetPredictionDetailsArgs struct {
	QuestionID string `json:"question_id" jsonschema:"The question ID (obtained from list_predictions, not shown to user)"`
}

// buildPredictionDetails renders one question in full, including its
// resolution when resolved and the last five forecasts in chronological
// order.
func buildPredictionDetails(ctx context.Context, svc predictionService, args GetPredictionDetailsArgs) string {
	if args.QuestionID == "" {
		return "Please provide a question ID."
	}
	q := svc.Question(ctx, args.QuestionID)
	if q == nil {
		return fmt.Sprintf("Question with ID '%s' not found.", args.QuestionID)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", orDefault(q.Title, "No title"))
	fmt.Fprintf(&sb, "Author: %s\n", authorName(q.User))
	fmt.Fprintf(&sb, "ID: %s\n", args.QuestionID)
	fmt.Fprintf(&sb, "Created: %s\n", orDefault(q.CreatedDate, "Unknown"))
	fmt.Fprintf(&sb, "Resolves by: %s\n", orDefault(q.ResolveBy, "No resolution date"))
	fmt.Fprintf(&sb, "Status: %s\n", statusLabel(q.Resolved))
	if q.Resolved && q.Resolution != "" {
		fmt.Fprintf(&sb, "Resolution: %s\n", q.Resolution)
	}

	if len(q.Forecasts) > 0 {
		history := q.Forecasts
		if len(history) > 5 {
			history = history[len(history)-5:]
		}
		fmt.Fprintf(&sb, "\nForecast history (%d forecasts, showing last 5):\n", len(q.Forecasts))
		for i, f := range history {
			name := "Unknown"
			if f.User != nil {
				name = orDefault(f.User.Name, "Unknown")
			}
			fmt.Fprintf(&sb, "  %d. %s by %s on %s\n", i+1, f.Forecast.Display(), name, orDefault(f.CreatedDate, "Unknown date"))
		}
	}
	return sb.String()
}
