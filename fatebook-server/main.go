// Fatebook MCP server: exposes prediction listing, inspection, search, and
// forecast updates as MCP tools. Runs over stdio by default, or as a
// streamable HTTP endpoint with -http.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Suhas-13/fatebook-mcp/internal/config"
	"github.com/Suhas-13/fatebook-mcp/internal/fatebook"
)

const serverVersion = "0.2.0"

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		httpAddr = flag.String("http", "", "serve MCP over HTTP on this address instead of stdio")
		mcpPath  = flag.String("path", "/mcp", "HTTP path for the MCP endpoint")
	)
	flag.Parse()

	// stdout belongs to the stdio transport, so all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	client := fatebook.NewClient(cfg.APIKey, &http.Client{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})
	client.BaseURL = cfg.BaseURL

	server, registry := newServer(client)

	if *httpAddr == "" {
		log.Info().Msg("fatebook MCP server listening on stdio")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	token := strings.TrimSpace(os.Getenv("MCP_AUTH_TOKEN"))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(token))
		r.Get("/tools", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
			w.Write(b)
		})
		r.Handle(*mcpPath, handler)
	})

	log.Info().Str("addr", *httpAddr).Str("path", *mcpPath).Msg("fatebook MCP server listening on HTTP")
	if err := http.ListenAndServe(*httpAddr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newServer builds the MCP server with the full tool catalog wired to svc.
func newServer(svc predictionService) (*mcp.Server, []toolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fatebook-mcp",
			Version: serverVersion,
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "list_predictions",
		Description: "List all your unresolved Fatebook predictions. The agent should use the returned IDs internally for updates/details without exposing them to the user.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListPredictionsArgs) (*mcp.CallToolResult, any, error) {
		return textResult(buildListPredictions(ctx, svc, args)), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "list_predictions_filtered",
		Description: "List predictions with advanced filtering options",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListPredictionsFilteredArgs) (*mcp.CallToolResult, any, error) {
		return textResult(buildListPredictionsFiltered(ctx, svc, args)), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_prediction_details",
		Description: "Get detailed information about a specific prediction. The agent should use question_id from list_predictions without exposing it to the user.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GetPredictionDetailsArgs) (*mcp.CallToolResult, any, error) {
		return textResult(buildPredictionDetails(ctx, svc, args)), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "update_prediction",
		Description: "Update a prediction probability. The agent should get the question_id from list_predictions and use it here without exposing IDs to the user.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdatePredictionArgs) (*mcp.CallToolResult, any, error) {
		return textResult(buildUpdatePrediction(ctx, svc, args)), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_predictions",
		Description: "Search for predictions matching a description",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SearchPredictionsArgs) (*mcp.CallToolResult, any, error) {
		return textResult(buildSearchPredictions(ctx, svc, args)), nil, nil
	})

	return server, registry
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// textResult wraps tool output as plain text content. Validation failures and
// not-found cases go through here too: the caller only ever sees literal
// text, so malformed calls are not reported as protocol-level errors.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			var key string
			if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				key = strings.TrimSpace(authz[7:])
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
