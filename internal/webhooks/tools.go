package webhooks

import (
	"context"
	"strings"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists webhook tool names that require confirmation before
// execution.
var DestructiveTools = []string{"webhook_delete"}

// WebhookTools returns the tool registrations for webhook management:
// webhook_create and webhook_delete (the latter gated on confirmation).
func WebhookTools(mgr WebhookManager, hosts *safety.HostFilter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolWebhookCreate(mgr, hosts, audit),
		toolWebhookDelete(mgr, confirm, audit),
	}
}

func checkHost(hosts *safety.HostFilter, host string) *mcp.CallToolResult {
	if host == "" || hosts == nil || hosts.IsAllowed(host) {
		return nil
	}
	return tools.HostNotAllowedResult(host)
}

// parseEvents converts a comma-separated event list into typed events. An
// empty input means all events.
func parseEvents(raw string) []Event {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	events := make([]Event, 0, len(parts))
	for _, p := range parts {
		events = append(events, Event(strings.TrimSpace(p)))
	}
	return events
}

// toolWebhookCreate constructs the webhook_create Registration.
func toolWebhookCreate(mgr WebhookManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "webhook_create"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Register a webhook on the publication. Requires a configured personal access token."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The HTTPS URL deliveries are sent to"),
		),
		mcp.WithString("events",
			mcp.Description("Comma-separated event types (e.g. POST_PUBLISHED,POST_DELETED); empty subscribes to all six"),
		),
		mcp.WithString("secret",
			mcp.Description("Shared secret used to sign deliveries"),
		),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		url := req.GetString("url", "")
		eventsRaw := req.GetString("events", "")
		secret := req.GetString("secret", "")
		host := req.GetString("host", "")
		params := map[string]any{"url": url, "events": eventsRaw, "host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		webhook, err := mgr.Create(ctx, host, url, parseEvents(eventsRaw), secret)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(webhook), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolWebhookDelete constructs the webhook_delete Registration. Deletion is
// destructive and uses the single-use confirmation token flow.
func toolWebhookDelete(mgr WebhookManager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "webhook_delete"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Delete a webhook registration by id. Requires confirmation."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The webhook id to delete"),
		),
		mcp.WithString("confirmation_token",
			mcp.Description("Token from a prior webhook_delete call confirming the deletion"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		id := req.GetString("id", "")
		token := req.GetString("confirmation_token", "")
		params := map[string]any{"id": id}

		if strings.TrimSpace(id) == "" {
			return tools.ErrorResult(ErrEmptyID.Error()), nil
		}

		if confirm != nil && confirm.NeedsConfirmation(toolName) {
			if token == "" {
				tools.LogAudit(audit, toolName, params, "confirmation requested", start)
				return tools.ConfirmPrompt(confirm, toolName, id,
					"Deleting a webhook stops all event deliveries to its URL."), nil
			}
			if !confirm.Confirm(token) {
				tools.LogAudit(audit, toolName, params, "error: invalid confirmation token", start)
				return tools.ErrorResult("invalid or expired confirmation token"), nil
			}
		}

		if err := mgr.Delete(ctx, id); err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return mcp.NewToolResultText("Webhook deleted."), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
