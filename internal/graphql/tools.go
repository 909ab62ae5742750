package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blognode/hashnode-mcp/internal/safety"
	"github.com/blognode/hashnode-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const toolNameGraphQLQuery = "graphql_query"

// GraphQLTools returns the tool registrations for the GraphQL escape hatch.
// It exposes a single "graphql_query" tool that executes arbitrary documents
// against the Hashnode API, for schema fields the typed tools do not cover.
func GraphQLTools(client Client, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolGraphQLQuery(client, audit),
	}
}

// toolGraphQLQuery constructs the graphql_query Registration.
func toolGraphQLQuery(client Client, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameGraphQLQuery,
		mcp.WithDescription("Execute an arbitrary GraphQL query against the Hashnode API. Use when direct API access is needed beyond the provided tools."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The GraphQL query or mutation string to execute."),
		),
		mcp.WithString("variables",
			mcp.Description("Optional JSON object string of variables to pass with the query."),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		query := req.GetString("query", "")
		variablesStr := req.GetString("variables", "")

		params := map[string]any{
			"query":     query,
			"variables": variablesStr,
		}

		var parsedVars map[string]any
		if variablesStr != "" {
			if err := json.Unmarshal([]byte(variablesStr), &parsedVars); err != nil {
				errMsg := fmt.Sprintf("parse variables JSON: %v", err)
				tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+errMsg, start)
				return tools.ErrorResult(errMsg), nil
			}
		}

		data, err := client.Execute(ctx, query, parsedVars)
		if err != nil {
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		var pretty any
		if err := json.Unmarshal(data, &pretty); err != nil {
			tools.LogAudit(audit, toolNameGraphQLQuery, params, "error: "+err.Error(), start)
			return tools.ErrorResult(fmt.Sprintf("parse response JSON: %v", err)), nil
		}

		tools.LogAudit(audit, toolNameGraphQLQuery, params, "ok", start)
		return tools.JSONResult(pretty), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
