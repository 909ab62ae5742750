package series

import (
	"context"
	"fmt"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SeriesTools returns the tool registrations for series operations:
// series_list, series_get, and series_posts.
func SeriesTools(mgr SeriesManager, hosts *safety.HostFilter, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolSeriesList(mgr, hosts, audit),
		toolSeriesGet(mgr, hosts, audit),
		toolSeriesPosts(mgr, hosts, audit),
	}
}

func checkHost(hosts *safety.HostFilter, host string) *mcp.CallToolResult {
	if host == "" || hosts == nil || hosts.IsAllowed(host) {
		return nil
	}
	return tools.HostNotAllowedResult(host)
}

// toolSeriesList constructs the series_list Registration.
func toolSeriesList(mgr SeriesManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "series_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the publication's post series."),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of series to return (default: 10, ceiling: 20)"),
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
			return mcp.NewToolResultText("No series found."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolSeriesGet constructs the series_get Registration.
func toolSeriesGet(mgr SeriesManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "series_get"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Fetch a single series by slug."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The series slug"),
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

		result, err := mgr.GetBySlug(ctx, host, slug)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if result == nil {
			tools.LogAudit(audit, toolName, params, "ok: not found", start)
			return mcp.NewToolResultText(fmt.Sprintf("No series found with slug %q.", slug)), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolSeriesPosts constructs the series_posts Registration.
func toolSeriesPosts(mgr SeriesManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "series_posts"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the posts belonging to one series."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The series slug"),
		),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of posts to return (default: 10, ceiling: 20)"),
		),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		slug := req.GetString("slug", "")
		first := req.GetInt("first", 0)
		host := req.GetString("host", "")
		params := map[string]any{"slug": slug, "first": first, "host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		result, err := mgr.Posts(ctx, host, slug, first)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if len(result) == 0 {
			tools.LogAudit(audit, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText("No posts found in this series."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
