package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shootlist/internal/adapters/excel"
	"shootlist/internal/adapters/exiftool"
	mcpadapter "shootlist/internal/adapters/mcp"
	"shootlist/internal/adapters/sqlite"
	"shootlist/internal/config"
	"shootlist/internal/ports"
)

func main() {
	excelFlag := flag.String("excel", "", "path to the article workbook (required)")
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	if *excelFlag == "" {
		log.Fatal("shootlist-mcp: --excel is required")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("shootlist-mcp: %v", err)
	}

	catalog, err := excel.NewLoader(cfg.Columns).Load(*excelFlag)
	if err != nil {
		log.Fatalf("shootlist-mcp: %v", err)
	}

	var journal ports.Journal
	j := sqlite.NewJournal()
	if err := j.Open(cfg.JournalPath); err == nil {
		journal = j
		defer j.Close()
	}

	mcpServer := server.NewMCPServer(
		"shootlist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, catalog, journal)
	mcpadapter.RegisterWriteTools(mcpServer, catalog, exiftool.NewWriter(cfg.Exiftool))

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("shootlist-mcp: %v", err)
	}
}
