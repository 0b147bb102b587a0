// Package mcp exposes the wiki over the Model Context Protocol. Tools run
// through the same command layer as the HTTP API, acting as one configured
// user.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// RegisterReadTools adds the read-only wiki tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, pages ports.PageStore, cats ports.CategoryStore) {
	s.AddTool(getPageTool(), getPageHandler(pages))
	s.AddTool(listPagesTool(), listPagesHandler(pages))
	s.AddTool(searchTool(), searchHandler(pages))
	s.AddTool(listCategoriesTool(), listCategoriesHandler(cats))
	s.AddTool(pageHistoryTool(), pageHistoryHandler(pages))
}

// --- get_page ---

func getPageTool() mcp.Tool {
	return mcp.NewTool("get_page",
		mcp.WithDescription("Read a wiki page by ID or slug, including its content."),
		mcp.WithString("id",
			mcp.Description("Page ID. Either id or slug is required."),
		),
		mcp.WithString("slug",
			mcp.Description("Page slug, e.g. setup-guide."),
		),
	)
}

func getPageHandler(pages ports.PageStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		slug := req.GetString("slug", "")

		var page *domain.PageMeta
		var err error
		switch {
		case id != "":
			page, err = commands.NewGetPageCommand(pages, id).Execute(ctx)
		case slug != "":
			page, err = commands.NewGetPageBySlugCommand(pages, slug).Execute(ctx)
		default:
			return toolError(fmt.Errorf("id or slug is required"))
		}
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n", page.Title)
		fmt.Fprintf(&sb, "id: %s  slug: %s  status: %s  version: %d\n", page.ID, page.Slug, page.Status, page.Version)
		fmt.Fprintf(&sb, "author: %s", page.AuthorName)
		if page.CategoryName != nil {
			fmt.Fprintf(&sb, "  category: %s", *page.CategoryName)
		}
		if len(page.Tags) > 0 {
			fmt.Fprintf(&sb, "  tags: %s", strings.Join(page.Tags, ", "))
		}
		sb.WriteString("\n\n")
		sb.WriteString(page.Content)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_pages ---

func listPagesTool() mcp.Tool {
	return mcp.NewTool("list_pages",
		mcp.WithDescription("List wiki pages, newest first. Optionally filter by status or category."),
		mcp.WithString("status",
			mcp.Description("Filter by status: draft, published, or archived. Omit for all."),
		),
		mcp.WithString("category_id",
			mcp.Description("Filter by category ID."),
		),
		mcp.WithString("limit",
			mcp.Description("Maximum number of pages to return."),
		),
	)
}

func listPagesHandler(pages ports.PageStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListPagesCommand(pages)
		cmd.Status = req.GetString("status", "")
		cmd.CategoryID = req.GetString("category_id", "")
		cmd.Limit = intArg(req, "limit")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result, formatPage)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search wiki pages by keyword in title or content. Defaults to published pages."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("status",
			mcp.Description("Filter by status: draft, published, or archived."),
		),
	)
}

func searchHandler(pages ports.PageStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchPagesCommand(pages, req.GetString("query", ""))
		cmd.Status = req.GetString("status", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result, formatPage)
	}
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List wiki categories with their published page counts."),
	)
}

func listCategoriesHandler(cats ports.CategoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListCategoriesCommand(cats).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result, formatCategory)
	}
}

// --- page_history ---

func pageHistoryTool() mcp.Tool {
	return mcp.NewTool("page_history",
		mcp.WithDescription("List a page's version history, newest first."),
		mcp.WithString("id",
			mcp.Description("Page ID"),
			mcp.Required(),
		),
	)
}

func pageHistoryHandler(pages ports.PageStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		versions, err := commands.NewListVersionsCommand(pages, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(versions, formatVersion)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func intArg(req mcp.CallToolRequest, name string) int {
	raw := req.GetString(name, "")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatPage(p domain.PageMeta) string {
	return fmt.Sprintf("%s  [%s] %s (v%d, %s)", p.ID, p.Status, p.Title, p.Version, p.Slug)
}

func formatCategory(c domain.CategoryCount) string {
	return fmt.Sprintf("%s  %s (%d pages)", c.ID, c.Name, c.PageCount)
}

func formatVersion(v domain.VersionMeta) string {
	summary := ""
	if v.ChangeSummary != nil {
		summary = "  " + *v.ChangeSummary
	}
	return fmt.Sprintf("v%d  %s  %s%s", v.Version.Version, v.CreatedAt.Format("2006-01-02 15:04"), v.AuthorName, summary)
}
