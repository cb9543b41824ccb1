package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suhas-13/fatebook-mcp/internal/fatebook"
)

type ListPredictionsArgs struct {
	Limit int `json:"limit" jsonschema:"Maximum number of predictions to return (default: 1000 - all predictions)"`
}

type ListPredictionsFilteredArgs struct {
	Limit              int      `json:"limit" jsonschema:"Maximum number of predictions to return (default: 20)"`
	Resolved           *bool    `json:"resolved,omitempty" jsonschema:"Filter to only resolved predictions"`
	Unresolved         *bool    `json:"unresolved,omitempty" jsonschema:"Filter to only unresolved predictions"`
	ShowAllPublic      bool     `json:"show_all_public" jsonschema:"Show all public predictions (not just yours)"`
	SearchString       string   `json:"search_string" jsonschema:"Search for predictions containing this text"`
	FilterTagIDs       []string `json:"filter_tag_ids,omitempty" jsonschema:"Restrict to questions carrying any of these tag ids"`
	FilterTournamentID string   `json:"filter_tournament_id,omitempty" jsonschema:"Restrict to questions in this tournament"`
	ResolvingSoon      bool     `json:"resolving_soon,omitempty" jsonschema:"Only questions resolving soon"`
	ReadyToResolve     bool     `json:"ready_to_resolve,omitempty" jsonschema:"Only questions past their resolve-by date"`
	SortEarliestFirst  bool     `json:"sort_earliest_first,omitempty" jsonschema:"Sort by resolve date, earliest first"`
}

// buildListPredictions lists the caller's own unresolved questions. The
// unresolved/own-only scoping is forced here regardless of caller intent.
func buildListPredictions(ctx context.Context, svc predictionService, args ListPredictionsArgs) string {
	limit := args.Limit
	if limit <= 0 {
		limit = 1000
	}
	unresolved := true
	questions := svc.Questions(ctx, fatebook.Filter{
		Limit:         limit,
		Unresolved:    &unresolved,
		ShowAllPublic: false,
	})
	if len(questions) == 0 {
		return "No predictions found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d predictions:\n\n", len(questions))
	for i, q := range questions {
		questionSummary(&sb, i+1, q, false)
	}
	sb.WriteString("\n💡 **Note**: This shows only the latest forecast for each prediction. ")
	sb.WriteString("Use `get_prediction_details` to see all forecasts from different users.")
	return sb.String()
}

func buildListPredictionsFiltered(ctx context.Context, svc predictionService, args ListPredictionsFilteredArgs) string {
	limit := args.Limit
	if limit <= 0 {
		limit = 20
	}
	questions := svc.Questions(ctx, fatebook.Filter{
		Limit:              limit,
		Resolved:           args.Resolved,
		Unresolved:         args.Unresolved,
		ShowAllPublic:      args.ShowAllPublic,
		SearchString:       args.SearchString,
		FilterTagIDs:       args.FilterTagIDs,
		FilterTournamentID: args.FilterTournamentID,
		ResolvingSoon:      args.ResolvingSoon,
		ReadyToResolve:     args.ReadyToResolve,
		SortEarliestFirst:  args.SortEarliestFirst,
	})
	if len(questions) == 0 {
		return "No predictions found" + filterSummary(args) + "."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d predictions:\n\n", len(questions))
	for i, q := range questions {
		questionSummary(&sb, i+1, q, true)
	}
	return sb.String()
}

// filterSummary names the filters that were in play so an empty result
// explains itself.
func filterSummary(args ListPredictionsFilteredArgs) string {
	var used []string
	if args.Resolved != nil && *args.Resolved {
		used = append(used, "resolved")
	}
	if args.Unresolved != nil && *args.Unresolved {
		used = append(used, "unresolved")
	}
	if args.ShowAllPublic {
		used = append(used, "public")
	}
	if args.SearchString != "" {
		used = append(used, fmt.Sprintf("search='%s'", args.SearchString))
	}
	if len(args.FilterTagIDs) > 0 {
		used = append(used, "tags="+strings.Join(args.FilterTagIDs, ","))
	}
	if args.FilterTournamentID != "" {
		used = append(used, fmt.Sprintf("tournament='%s'", args.FilterTournamentID))
	}
	if args.ResolvingSoon {
		used = append(used, "resolving soon")
	}
	if args.ReadyToResolve {
		used = append(used, "ready to resolve")
	}
	if args.SortEarliestFirst {
		used = append(used, "earliest first")
	}
	if len(used) == 0 {
		return ""
	}
	return " with filters: " + strings.Join(used, ", ")
}
