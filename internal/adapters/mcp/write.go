package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// RegisterWriteTools adds the mutating wiki tools to the MCP server. All
// writes run as actor, so authorization follows that user's rights.
func RegisterWriteTools(s *server.MCPServer, pages ports.PageStore, cats ports.CategoryStore, actor *domain.User) {
	s.AddTool(createPageTool(), createPageHandler(pages, cats, actor))
	s.AddTool(updatePageTool(), updatePageHandler(pages, cats, actor))
	s.AddTool(deletePageTool(), deletePageHandler(pages, actor))
}

// --- create_page ---

func createPageTool() mcp.Tool {
	return mcp.NewTool("create_page",
		mcp.WithDescription("Create a wiki page. The slug is derived from the title; the page starts at version 1."),
		mcp.WithString("title",
			mcp.Description("Page title"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Page content (markdown)"),
		),
		mcp.WithString("category_id",
			mcp.Description("Category ID to file the page under."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags."),
		),
		mcp.WithString("status",
			mcp.Description("draft, published, or archived. Defaults to draft."),
		),
	)
}

func createPageHandler(pages ports.PageStore, cats ports.CategoryStore, actor *domain.User) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreatePageCommand(pages, cats, actor)
		cmd.Title = req.GetString("title", "")
		cmd.Content = req.GetString("content", "")
		cmd.Status = req.GetString("status", "")
		if categoryID := req.GetString("category_id", ""); categoryID != "" {
			cmd.CategoryID = &categoryID
		}
		cmd.Tags = splitTags(req.GetString("tags", ""))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_page ---

func updatePageTool() mcp.Tool {
	return mcp.NewTool("update_page",
		mcp.WithDescription("Update a wiki page. Only supplied fields change; every update appends a new version."),
		mcp.WithString("id",
			mcp.Description("Page ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("content",
			mcp.Description("New content"),
		),
		mcp.WithString("category_id",
			mcp.Description("New category ID. Pass \"none\" to remove the category."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags, replacing the current set. Pass \"none\" to clear."),
		),
		mcp.WithString("status",
			mcp.Description("draft, published, or archived."),
		),
		mcp.WithString("change_summary",
			mcp.Description("Short note recorded with the new version."),
		),
	)
}

func updatePageHandler(pages ports.PageStore, cats ports.CategoryStore, actor *domain.User) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdatePageCommand(pages, cats, actor, req.GetString("id", ""))
		if title := req.GetString("title", ""); title != "" {
			cmd.Title = &title
		}
		if content := req.GetString("content", ""); content != "" {
			cmd.Content = &content
		}
		if categoryID := req.GetString("category_id", ""); categoryID != "" {
			if categoryID == "none" {
				categoryID = ""
			}
			cmd.CategoryID = &categoryID
		}
		if tags := req.GetString("tags", ""); tags != "" {
			if tags == "none" {
				cmd.Tags = []string{}
			} else {
				cmd.Tags = splitTags(tags)
			}
		}
		if status := req.GetString("status", ""); status != "" {
			cmd.Status = &status
		}
		if summary := req.GetString("change_summary", ""); summary != "" {
			cmd.ChangeSummary = &summary
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_page ---

func deletePageTool() mcp.Tool {
	return mcp.NewTool("delete_page",
		mcp.WithDescription("Delete a wiki page along with its version history and board links."),
		mcp.WithString("id",
			mcp.Description("Page ID"),
			mcp.Required(),
		),
	)
}

func deletePageHandler(pages ports.PageStore, actor *domain.User) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeletePageCommand(pages, actor, req.GetString("id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
