package mcp

import (
	"context"
	"encoding/json"

	"github.com/codexhq/congress-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox stores and dispatches tools by name. Registration order is
// preserved so tools/list output is stable across runs.
type Toolbox struct {
	tools map[string]Tool
	order []string
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		name := t.Descriptor().Name
		if _, exists := tb.tools[name]; exists {
			continue
		}
		tb.tools[name] = t
		tb.order = append(tb.order, name)
	}
	return tb
}

// Len reports how many tools are registered.
func (tb *Toolbox) Len() int {
	return len(tb.order)
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32601, Message: "tool not found"}
	}
	return tool.Invoke(ctx, args)
}
