package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/mcp"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/sqlite"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/config"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the SQLite database")
	userFlag := flag.String("user", "", "email of the user tool calls act as")
	flag.Parse()

	if *userFlag == "" {
		log.Fatal("pix3lwiki-mcp: -user is required")
	}

	store, err := sqlite.Open(*dbFlag)
	if err != nil {
		log.Fatalf("pix3lwiki-mcp: opening database: %v", err)
	}
	defer store.Close()

	actor, err := store.GetUserByEmail(context.Background(), *userFlag)
	if err != nil {
		log.Fatalf("pix3lwiki-mcp: looking up user: %v", err)
	}
	if actor == nil {
		log.Fatalf("pix3lwiki-mcp: no user with email %s", *userFlag)
	}

	mcpServer := server.NewMCPServer(
		"pix3lwiki-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, store, store)
	mcpadapter.RegisterWriteTools(mcpServer, store, store, actor)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pix3lwiki-mcp: %v", err)
	}
}
