package posts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PostTools returns the tool registrations for post operations: posts_list,
// post_get, and posts_search.
func PostTools(mgr PostManager, hosts *safety.HostFilter, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolPostsList(mgr, hosts, audit),
		toolPostGet(mgr, hosts, audit),
		toolPostsSearch(mgr, hosts, audit),
	}
}

// checkHost applies the safety filter to a host override. The configured
// default host (empty override) is always permitted.
func checkHost(hosts *safety.HostFilter, host string) *mcp.CallToolResult {
	if host == "" || hosts == nil || hosts.IsAllowed(host) {
		return nil
	}
	return tools.HostNotAllowedResult(host)
}

// formatPost renders a single post as a human-readable summary line block.
func formatPost(p Post) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (/%s)\n", p.Title, p.Slug)
	fmt.Fprintf(&sb, "  %s\n", p.Brief)
	fmt.Fprintf(&sb, "  By: %s (@%s) | Published: %s | %d min read",
		p.Author.Name, p.Author.Username, p.PublishedAt, p.ReadTimeInMinutes)
	if len(p.Tags) > 0 {
		names := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			names[i] = t.Name
		}
		fmt.Fprintf(&sb, "\n  Tags: %s", strings.Join(names, ", "))
	}
	return sb.String()
}

// toolPostsList constructs the posts_list Registration.
func toolPostsList(mgr PostManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "posts_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List recent posts of the publication, newest first."),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of posts to return (default: 10, ceiling: 20)"),
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
			return mcp.NewToolResultText("No posts found."), nil
		}

		var sb strings.Builder
		for i, p := range result {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(formatPost(p))
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return mcp.NewToolResultText(sb.String()), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolPostGet constructs the post_get Registration.
func toolPostGet(mgr PostManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "post_get"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Fetch a single post by slug, including its full content."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The post slug, e.g. \"my-first-post\""),
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

		post, err := mgr.GetBySlug(ctx, host, slug)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if post == nil {
			tools.LogAudit(audit, toolName, params, "ok: not found", start)
			return mcp.NewToolResultText(fmt.Sprintf("No post found with slug %q.", slug)), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.JSONResult(post), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolPostsSearch constructs the posts_search Registration.
func toolPostsSearch(mgr PostManager, hosts *safety.HostFilter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "posts_search"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Full-text search across the publication's posts."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search term"),
		),
		mcp.WithNumber("first",
			mcp.Description("Maximum number of results to return (default: 10, ceiling: 20)"),
		),
		mcp.WithString("host",
			mcp.Description("Publication host override; defaults to the configured publication"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		query := req.GetString("query", "")
		first := req.GetInt("first", 0)
		host := req.GetString("host", "")
		params := map[string]any{"query": query, "first": first, "host": host}

		if res := checkHost(hosts, host); res != nil {
			tools.LogAudit(audit, toolName, params, "denied: host filter", start)
			return res, nil
		}

		result, err := mgr.Search(ctx, host, query, first)
		if err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		if len(result) == 0 {
			tools.LogAudit(audit, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText("No matching posts found."), nil
		}

		var sb strings.Builder
		for i, p := range result {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(formatPost(p))
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return mcp.NewToolResultText(sb.String()), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
