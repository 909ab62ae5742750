// Package main is the entry point for the hashnode-mcp server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blognode/hashnode-mcp/internal/auth"
	"github.com/blognode/hashnode-mcp/internal/comments"
	"github.com/blognode/hashnode-mcp/internal/config"
	"github.com/blognode/hashnode-mcp/internal/drafts"
	"github.com/blognode/hashnode-mcp/internal/graphql"
	"github.com/blognode/hashnode-mcp/internal/overview"
	"github.com/blognode/hashnode-mcp/internal/pages"
	"github.com/blognode/hashnode-mcp/internal/posts"
	"github.com/blognode/hashnode-mcp/internal/publication"
	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/series"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/blognode/hashnode-mcp/internal/webhooks"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

const defaultConfigPath = "/config/config.yaml"

func main() {
	// A missing .env file is fine; env vars may come from the process
	// environment directly.
	_ = godotenv.Load()

	cfg := loadConfig()
	config.ApplyEnvOverrides(cfg)

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		log.Printf("warning: could not generate auth token: %v — running without authentication", err)
	} else if tokenBefore == "" {
		log.Printf("generated auth token (set HASHNODE_MCP_AUTH_TOKEN to persist): %s", token)
	}

	if cfg.Hashnode.Host == "" {
		log.Printf("warning: no publication host configured; set hashnode.host or HASHNODE_HOST")
	}

	// Open audit log writer if enabled.
	var auditLogger *safety.AuditLogger
	if cfg.Audit.Enabled {
		f, err := os.OpenFile(cfg.Audit.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Printf("warning: could not open audit log %q: %v — audit logging disabled", cfg.Audit.LogPath, err)
		} else {
			auditLogger = safety.NewAuditLogger(f)
			defer f.Close()
		}
	}

	hostFilter := safety.NewHostFilter(
		cfg.Safety.Hosts.Allowlist,
		cfg.Safety.Hosts.Denylist,
	)
	confirm := safety.NewConfirmationTracker(webhooks.DestructiveTools)

	// Build the GraphQL client and the per-resource managers.
	client := graphql.NewHTTPClient(cfg.Hashnode)

	postMgr := posts.NewManager(client, cfg.Hashnode.Host, cfg.Pagination)
	pubMgr := publication.NewManager(client, cfg.Hashnode.Host)
	seriesMgr := series.NewManager(client, cfg.Hashnode.Host, cfg.Pagination)
	pageMgr := pages.NewManager(client, cfg.Hashnode.Host, cfg.Pagination)
	commentMgr := comments.NewManager(client)
	draftMgr := drafts.NewManager(client, cfg.Hashnode.Host, cfg.Pagination)
	webhookMgr := webhooks.NewManager(client, cfg.Hashnode.Host)

	aggregator := overview.NewAggregator(
		publication.NewSafe(pubMgr),
		posts.NewSafe(postMgr),
		series.NewSafe(seriesMgr),
		pages.NewSafe(pageMgr),
	)

	// Build MCP server.
	mcpServer := server.NewMCPServer(
		"hashnode-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	// Register all tools.
	var registrations []tools.Registration
	registrations = append(registrations, posts.PostTools(postMgr, hostFilter, auditLogger)...)
	registrations = append(registrations, publication.PublicationTools(pubMgr, hostFilter, auditLogger)...)
	registrations = append(registrations, series.SeriesTools(seriesMgr, hostFilter, auditLogger)...)
	registrations = append(registrations, pages.PageTools(pageMgr, hostFilter, auditLogger)...)
	registrations = append(registrations, comments.CommentTools(commentMgr, auditLogger)...)
	registrations = append(registrations, drafts.DraftTools(draftMgr, hostFilter, auditLogger)...)
	registrations = append(registrations, webhooks.WebhookTools(webhookMgr, hostFilter, confirm, auditLogger)...)
	registrations = append(registrations, overview.OverviewTools(aggregator, hostFilter, auditLogger)...)
	registrations = append(registrations, graphql.GraphQLTools(client, auditLogger)...)

	tools.RegisterAll(mcpServer, registrations)

	// Build Streamable HTTP server and wrap with auth middleware.
	httpHandler := server.NewStreamableHTTPServer(mcpServer)
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken)
	wrappedHandler := authMiddleware(httpHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           wrappedHandler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("hashnode-mcp listening on %s (publication: %s)", addr, cfg.Hashnode.Host)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-stop
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
	log.Println("server stopped")
}

// loadConfig attempts to read the config file from the path specified by
// HASHNODE_MCP_CONFIG_PATH or the default /config/config.yaml. If the file
// cannot be read, DefaultConfig is returned.
func loadConfig() *config.Config {
	path := os.Getenv("HASHNODE_MCP_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("could not load config from %q (%v), using defaults", path, err)
		return config.DefaultConfig()
	}

	log.Printf("loaded config from %q", path)
	return cfg
}
