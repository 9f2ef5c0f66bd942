package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/codexhq/congress-mcp-server/internal/congress"
	"github.com/codexhq/congress-mcp-server/internal/mcp"
	"github.com/codexhq/congress-mcp-server/internal/tools"
)

// NewToolbox builds the full Congress.gov toolbox around the shared client.
func NewToolbox(client *congress.Client) *mcp.Toolbox {
	return mcp.NewToolbox(tools.All(client)...)
}

// NewMCPServer constructs an MCP server with the full toolbox.
func NewMCPServer(client *congress.Client) *mcp.Server {
	return mcp.NewServer(NewToolbox(client))
}

// RunStdio serves MCP over the provided streams until the input closes.
func RunStdio(ctx context.Context, client *congress.Client, in io.Reader, out io.Writer, log *logrus.Entry) error {
	return mcp.RunStdio(ctx, NewMCPServer(client), in, out, log)
}

// RunHTTP starts the MCP HTTP server on the provided address.
func RunHTTP(client *congress.Client, addr string, log *logrus.Entry) error {
	return mcp.RunHTTP(NewMCPServer(client), addr, log)
}
