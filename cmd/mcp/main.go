package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/puIad/nlp-project/internal/config"
	"github.com/puIad/nlp-project/internal/core/usecase"
	"github.com/puIad/nlp-project/internal/observability/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger("mcp", cfg.LogLevel)

	analyzer := usecase.NewAnalyzer(logger, nil, usecase.WithReferenceYear(cfg.AnalysisReferenceYear))

	srv := server.NewMCPServer("cv-analysis-engine", "1.0.0", server.WithToolCapabilities(false))

	tool := mcp.NewTool("analyze_cv_text",
		mcp.WithDescription("Analyze plain CV text: sections, skills, entities, career field, experience level and scores."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Plain text content of the CV to analyze."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if text == "" {
			return mcp.NewToolResultError("text must not be empty"), nil
		}

		analysis := analyzer.Analyze(ctx, text)
		payload, err := json.Marshal(analysis)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode analysis: %v", err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	})

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server stopped", "error", err)
	}
}
