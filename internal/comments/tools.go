package comments

import (
	"context"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CommentTools returns the tool registrations for comment operations.
func CommentTools(mgr CommentManager, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolCommentsList(mgr, audit),
	}
}

// toolCommentsList constructs the comments_list Registration.
func toolCommentsList(mgr CommentManager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "comments_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the comments on a post, identified by post id."),
		mcp.WithString("post_id",
			mcp.Required(),
			mcp.Description("The id of the post whose comments to list"),
		),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of comments to return (default: 25, ceiling: 50)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		postID := req.GetString("post_id", "")
		first := req.GetInt("first", 0)
		params := map[string]any{"post_id": postID, "first": first}

		result, err := mgr.List(ctx, postID, first)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if len(result) == 0 {
			tools.LogAudit(audit, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText("No comments found."), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
