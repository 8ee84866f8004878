// Package mcpserver serves the weather tools over the Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"

	"weather-agent-service/internal/platform/obs"
	"weather-agent-service/internal/tools"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var logger = xlog.NewPackageLogger("weather-agent-service/internal", "mcpserver")

const (
	ServerName    = "weather-agent"
	ServerVersion = "0.1.0"
)

// New builds an MCP server exposing every tool in reg.
func New(reg *tools.Registry) (*server.MCPServer, error) {
	s := server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, t := range reg.Tools() {
		schema, err := json.Marshal(t.Parameters)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s parameters", t.Name)
		}
		s.AddTool(mcp.NewToolWithRawSchema(t.Name, t.Description, schema), Handler(t))
	}

	return s, nil
}

// Handler adapts a tool to an MCP tool handler. Failed lookups are tool
// results flagged IsError; only undecodable arguments are protocol errors.
func Handler(t tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = obs.WithRequestID(ctx, uuid.NewString())

		args, err := json.Marshal(req.GetRawArguments())
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode arguments", t.Name)
		}

		resp, err := t.Call(ctx, args)
		if err != nil {
			logger.ContextKV(ctx, xlog.WARNING, "req_id", obs.RequestID(ctx), "tool", t.Name, "err", err)
			return nil, err
		}

		body, err := json.Marshal(resp)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode response", t.Name)
		}

		result := mcp.NewToolResultText(string(body))
		result.IsError = !resp.OK()
		logger.ContextKV(ctx, xlog.DEBUG, "req_id", obs.RequestID(ctx), "tool", t.Name, "status", resp.Status)
		return result, nil
	}
}

// ServeStdio blocks serving reg on stdin/stdout.
func ServeStdio(reg *tools.Registry) error {
	s, err := New(reg)
	if err != nil {
		return err
	}
	return server.ServeStdio(s)
}
