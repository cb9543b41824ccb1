package main

import (
	"context"

	"github.com/Suhas-13/fatebook-mcp/internal/fatebook"
)

// predictionService is what the tool handlers need from the Fatebook client.
// Kept as an interface so tests can substitute a double for the live API.
type predictionService interface {
	Questions(ctx context.Context, f fatebook.Filter) []fatebook.Question
	Question(ctx context.Context, id string) *fatebook.Question
	AddForecast(ctx context.Context, id string, forecast float64, comment string) bool
}
