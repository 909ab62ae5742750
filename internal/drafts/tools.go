package drafts

import (
	"context"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DraftTools returns the tool registrations for draft operations.
func DraftTools(mgr DraftManager, hosts *safety.HostFilter, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolDraftsList(mgr, hosts, audit),
	}
}

func checkHost(hosts *safety.HostFilter, host string) *mcp.CallToolResult {
	if host == "" || hosts == nil || hosts.IsAllowed(host) {
		return nil
	}
	return tools.HostNotAllowedResult(host)
}

// toolDraftsList constructs the drafts_list Registration.
func toolDraftsList(mgr DraftManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "drafts_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the publication's unpublished drafts. Requires a configured personal access token."),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of drafts to return (default: 10, ceiling: 20)"),
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
			return mcp.NewToolResultText("No drafts found (is a personal access token configured?)."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
