package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PageTools returns the tool registrations for static page operations:
// pages_list and page_get.
func PageTools(mgr PageManager, hosts *safety.HostFilter, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolPagesList(mgr, hosts, audit),
		toolPageGet(mgr, hosts, audit),
	}
}

func checkHost(hosts *safety.HostFilter, host string) *mcp.CallToolResult {
	if host == "" || hosts == nil || hosts.IsAllowed(host) {
		return nil
	}
	return tools.HostNotAllowedResult(host)
}

// toolPagesList constructs the pages_list Registration.
func toolPagesList(mgr PageManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "pages_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the publication's static pages (about, contact, ...)."),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of pages to return (default: 10, ceiling: 20)"),
		),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		first := req.GetInt("first", 0)
		host := req.GetString("host", "")
		params := map[string]any{"first": first, "host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		result, err := mgr.List(ctx, host, first)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if len(result) == 0 {
			tools.LogAudit(audit, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText("No static pages found."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolPageGet constructs the page_get Registration.
func toolPageGet(mgr PageManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "page_get"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Fetch a single static page by slug, including its content."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The page slug, e.g. \"about\""),
		),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		slug := req.GetString("slug", "")
		host := req.GetString("host", "")
		params := map[string]any{"slug": slug, "host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		page, err := mgr.GetBySlug(ctx, host, slug)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if page == nil {
			tools.LogAudit(audit, toolName, params, "ok: not found", start)
			return mcp.NewToolResultText(fmt.Sprintf("No static page found with slug %q.", slug)), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(page), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
