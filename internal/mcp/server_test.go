package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/codexhq/congress-mcp-server/internal/protocol"
)

type fakeTool struct {
	name   string
	result string
}

func (f *fakeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: f.name, Description: "fake tool"}
}

func (f *fakeTool) Invoke(_ context.Context, _ json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	return protocol.TextResult(f.result), nil
}

func TestHandleInitialize(t *testing.T) {
	s := NewServer(NewToolbox())
	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: float64(1), Method: "initialize"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]string)
	if !ok || info["name"] != "congress-mcp-server" {
		t.Fatalf("unexpected serverInfo: %+v", result["serverInfo"])
	}
}

func TestHandleToolsListPreservesOrder(t *testing.T) {
	s := NewServer(NewToolbox(
		&fakeTool{name: "zeta"},
		&fakeTool{name: "alpha"},
	))
	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: "1", Method: "tools/list"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	list, ok := resp.Result.(protocol.ListResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(list.Tools) != 2 || list.Tools[0].Name != "zeta" || list.Tools[1].Name != "alpha" {
		t.Fatalf("registration order not preserved: %+v", list.Tools)
	}
}

func TestHandleToolsCall(t *testing.T) {
	s := NewServer(NewToolbox(&fakeTool{name: "echo", result: `{"ok":true}`}))
	params, _ := json.Marshal(protocol.CallParams{Name: "echo"})
	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: "1", Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(result.Content) != 1 || result.Content[0].Text != `{"ok":true}` {
		t.Fatalf("unexpected content: %+v", result.Content)
	}
}

func TestHandleUnknownToolAndMethod(t *testing.T) {
	s := NewServer(NewToolbox())

	params, _ := json.Marshal(protocol.CallParams{Name: "nope"})
	resp, _ := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: "1", Method: "tools/call", Params: params})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected tool-not-found error, got %+v", resp)
	}

	resp, _ = s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: "1", Method: "bogus"})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected method-not-found error, got %+v", resp)
	}
}

func TestHandleRejectsWrongVersion(t *testing.T) {
	s := NewServer(NewToolbox())
	resp, _ := s.Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: "1", Method: "ping"})
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected invalid-version error, got %+v", resp)
	}
}
