package main

import (
	"context"
	"fmt"
	"strings"
)

type UpdatePredictionArgs struct {
	QuestionID     string   `json:"question_id" jsonschema:"The question ID (obtained from list_predictions, not shown to user)"`
	NewProbability *float64 `json:"new_probability" jsonschema:"New probability (0.0 to 1.0)"`
	Comment        string   `json:"comment" jsonschema:"Optional comment explaining the update"`
}

// buildUpdatePrediction validates, fetches the question for its title, then
// submits the forecast. The submit is never attempted before the fetch
// result is known.
func buildUpdatePrediction(ctx context.Context, svc predictionService, args UpdatePredictionArgs) string {
	if args.QuestionID == "" {
		return "Please provide a question ID to update."
	}
	if args.NewProbability == nil {
		return "Please provide a new probability."
	}
	p := *args.NewProbability
	if p < 0 || p > 1 {
		return "Probability must be between 0.0 and 1.0."
	}

	question := svc.Question(ctx, args.QuestionID)
	if question == nil {
		return fmt.Sprintf("Question with ID '%s' not found.", args.QuestionID)
	}
	title := orDefault(question.Title, "No title")

	if !svc.AddForecast(ctx, args.QuestionID, p, args.Comment) {
		return fmt.Sprintf("❌ Failed to update prediction:\n\n**%s** (ID: %s)", title, args.QuestionID)
	}

	var sb strings.Builder
	sb.WriteString("✅ Successfully updated prediction:\n\n")
	fmt.Fprintf(&sb, "**%s**\n", title)
	fmt.Fprintf(&sb, "ID: %s\n", args.QuestionID)
	fmt.Fprintf(&sb, "New forecast: %.1f%%", p*100)
	if args.Comment != "" {
		fmt.Fprintf(&sb, "\nComment: %s", args.Comment)
	}
	return sb.String()
}
