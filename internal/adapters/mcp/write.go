package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shootlist/internal/application/commands"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// RegisterWriteTools adds the metadata-writing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, catalog *domain.Catalog, writer ports.MetadataWriter) {
	s.AddTool(tagPhotoTool(), tagPhotoHandler(catalog, writer))
}

// --- tag_photo ---

func tagPhotoTool() mcp.Tool {
	return mcp.NewTool("tag_photo",
		mcp.WithDescription("Embed an article variation's IPTC metadata into a photo file via exiftool."),
		mcp.WithString("article_no",
			mcp.Description("Article number whose fields to embed, e.g. A100"),
			mcp.Required(),
		),
		mcp.WithString("position",
			mcp.Description("Variation position: v (front) or h (back). Defaults to v."),
		),
		mcp.WithString("file_path",
			mcp.Description("Absolute path of the photo file to tag"),
			mcp.Required(),
		),
	)
}

func tagPhotoHandler(catalog *domain.Catalog, writer ports.MetadataWriter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		articleNo := req.GetString("article_no", "")
		position := req.GetString("position", domain.PositionFront)
		filePath := req.GetString("file_path", "")

		lookup := commands.NewLookupArticleCommand(catalog, articleNo)
		variations, err := lookup.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		for _, v := range variations {
			if v.Position != position {
				continue
			}
			tag := commands.NewTagPhotoCommand(writer, filePath, v)
			result, err := tag.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}
		return toolError(fmt.Errorf("article %s has no %q variation", articleNo, position))
	}
}
