package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shootlist/internal/application/commands"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// RegisterReadTools adds all read-only catalog and journal tools to the
// MCP server.
func RegisterReadTools(s *server.MCPServer, catalog *domain.Catalog, journal ports.Journal) {
	s.AddTool(listArticlesTool(), listArticlesHandler(catalog))
	s.AddTool(lookupArticleTool(), lookupArticleHandler(catalog))
	s.AddTool(previewFilenameTool(), previewFilenameHandler(catalog))
	if journal != nil {
		s.AddTool(sessionHistoryTool(), sessionHistoryHandler(journal))
	}
}

// --- list_articles ---

func listArticlesTool() mcp.Tool {
	return mcp.NewTool("list_articles",
		mcp.WithDescription("List all article numbers in the loaded catalog, with their variation counts."),
	)
}

func listArticlesHandler(catalog *domain.Catalog) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var b strings.Builder
		for _, no := range catalog.ArticleNumbers() {
			fmt.Fprintf(&b, "%s (%d variations)\n", no, len(catalog.Lookup(no)))
		}
		if b.Len() == 0 {
			return mcp.NewToolResultText("catalog is empty"), nil
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- lookup_article ---

func lookupArticleTool() mcp.Tool {
	return mcp.NewTool("lookup_article",
		mcp.WithDescription("Look up one article by number. Returns its variations with description, color, and position."),
		mcp.WithString("article_no",
			mcp.Description("Article number, e.g. A100"),
			mcp.Required(),
		),
	)
}

func lookupArticleHandler(catalog *domain.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		articleNo := req.GetString("article_no", "")

		cmd := commands.NewLookupArticleCommand(catalog, articleNo)
		variations, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var b strings.Builder
		for _, v := range variations {
			fmt.Fprintf(&b, "%s %s | %s | %s %s | %s\n",
				v.Number, v.PositionLabel(), v.Description, v.ColorCode, v.ColorName, v.Category)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- preview_filename ---

func previewFilenameTool() mcp.Tool {
	return mcp.NewTool("preview_filename",
		mcp.WithDescription("Compute the target photo file name for an article variation. Does not touch the clipboard."),
		mcp.WithString("article_no",
			mcp.Description("Article number, e.g. A100"),
			mcp.Required(),
		),
		mcp.WithString("position",
			mcp.Description("Variation position: v (front) or h (back). Defaults to v."),
		),
	)
}

func previewFilenameHandler(catalog *domain.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		articleNo := req.GetString("article_no", "")
		position := req.GetString("position", domain.PositionFront)

		cmd := commands.NewLookupArticleCommand(catalog, articleNo)
		variations, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		for _, v := range variations {
			if v.Position == position {
				return mcp.NewToolResultText(v.FileName()), nil
			}
		}
		return toolError(fmt.Errorf("article %s has no %q variation", articleNo, position))
	}
}

// --- session_history ---

func sessionHistoryTool() mcp.Tool {
	return mcp.NewTool("session_history",
		mcp.WithDescription("List recent shooting sessions from the journal, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of sessions to return (default 10)"),
		),
	)
}

func sessionHistoryHandler(journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 10)

		cmd := commands.NewSessionHistoryCommand(journal, limit)
		sessions, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var b strings.Builder
		for _, s := range sessions {
			state := "open"
			if !s.FinishedAt.IsZero() {
				state = "finished"
			}
			fmt.Fprintf(&b, "%s | %s | %d photos | %s | %s\n",
				s.ID, s.StartedAt.Format("2006-01-02 15:04"), s.Photos, state, s.WorkbookPath)
		}
		if b.Len() == 0 {
			return mcp.NewToolResultText("no sessions journaled yet"), nil
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
