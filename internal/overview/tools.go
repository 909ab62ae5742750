package overview

import (
	"context"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// OverviewTools returns the tool registration for the combined site snapshot.
func OverviewTools(agg *Aggregator, hosts *safety.HostFilter, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolSiteOverview(agg, hosts, audit),
	}
}

// toolSiteOverview constructs the site_overview Registration.
func toolSiteOverview(agg *Aggregator, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "site_overview"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Fetch a combined snapshot of the publication: metadata, recent posts, series, and static pages. Partial results are returned if some lookups fail."),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of items per category (default: 10, ceiling: 20)"),
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

		if host != "" && hosts != nil && !hosts.IsAllowed(host) {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return tools.HostNotAllowedResult(host), nil
		}

		snap := agg.Snapshot(ctx, host, first)

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(snap), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
