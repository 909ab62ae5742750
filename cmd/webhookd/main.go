// Package main is the entry point for the standalone webhook receiver. It
// verifies and validates inbound Hashnode deliveries and logs each event;
// deployments embed their own handlers by building on internal/webhooks.
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

	"github.com/blognode/hashnode-mcp/internal/config"
	"github.com/blognode/hashnode-mcp/internal/webhooks"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "/config/config.yaml"

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	config.ApplyEnvOverrides(cfg)

	if cfg.Webhook.Secret == "" {
		log.Fatal("webhook secret is required; set webhook.secret or HASHNODE_WEBHOOK_SECRET")
	}

	handlers := webhooks.HandlerMap{}
	for _, event := range webhooks.AllEvents {
		handlers[event] = logEvent
	}

	router := webhooks.NewRouter(cfg.Webhook.Path, cfg.Webhook.Secret, handlers)

	addr := fmt.Sprintf(":%d", cfg.Webhook.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("webhookd listening on %s (path: %s)", addr, cfg.Webhook.Path)
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

// logEvent records one validated delivery.
func logEvent(_ context.Context, payload *webhooks.Payload) error {
	switch {
	case payload.Data.Post != nil:
		log.Printf("event %s: post %s (publication %s)", payload.Event, payload.Data.Post.ID, payload.Publication.ID)
	case payload.Data.StaticPage != nil:
		log.Printf("event %s: static page %s (publication %s)", payload.Event, payload.Data.StaticPage.ID, payload.Publication.ID)
	default:
		log.Printf("event %s (publication %s)", payload.Event, payload.Publication.ID)
	}
	return nil
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
