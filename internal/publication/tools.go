package publication

import (
	"context"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PublicationTools returns the tool registrations for publication metadata:
// publication_get and publication_recommendations.
func PublicationTools(mgr PublicationManager, hosts *safety.HostFilter, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolPublicationGet(mgr, hosts, audit),
		toolPublicationRecommendations(mgr, hosts, audit),
	}
}

func checkHost(hosts *safety.HostFilter, host string) *mcp.CallToolResult {
	if host == "" || hosts == nil || hosts.IsAllowed(host) {
		return nil
	}
	return tools.HostNotAllowedResult(host)
}

// toolPublicationGet constructs the publication_get Registration.
func toolPublicationGet(mgr PublicationManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "publication_get"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Fetch the publication's metadata: title, description, owner, follower count."),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		host := req.GetString("host", "")
		params := map[string]any{"host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		pub, err := mgr.Get(ctx, host)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if pub == nil {
			tools.LogAudit(audit, toolName, params, "ok: not found", start)
			return mcp.NewToolResultText("Publication not found."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(pub), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolPublicationRecommendations constructs the publication_recommendations
// Registration.
func toolPublicationRecommendations(mgr PublicationManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "publication_recommendations"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the publications recommended by this publication."),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		host := req.GetString("host", "")
		params := map[string]any{"host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		recs, err := mgr.Recommendations(ctx, host)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if len(recs) == 0 {
			tools.LogAudit(audit, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText("No recommended publications."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(recs), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
