package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/codexhq/congress-mcp-server/internal/congress"
	"github.com/codexhq/congress-mcp-server/internal/protocol"
)

func TestToolboxCarriesFullCatalog(t *testing.T) {
	tb := NewToolbox(congress.New(congress.Config{APIKey: "k"}))
	if tb.Len() != 77 {
		t.Fatalf("expected 77 registered tools, got %d", tb.Len())
	}

	names := map[string]bool{}
	for _, d := range tb.Describe() {
		names[d.Name] = true
	}
	for _, want := range []string{
		"list_bills", "get_bill_details", "list_members",
		"get_current_congress", "get_crs_report_details",
	} {
		if !names[want] {
			t.Fatalf("tool %s not registered", want)
		}
	}
}

func TestServerAnswersToolCallWithoutCredential(t *testing.T) {
	s := NewMCPServer(congress.New(congress.Config{}))

	params, _ := json.Marshal(protocol.CallParams{
		Name: "get_current_congress",
		Args: json.RawMessage(`{}`),
	})
	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: "1", Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if result.Content[0].Text != `{"error":"API key is not configured."}` {
		t.Fatalf("unexpected payload: %s", result.Content[0].Text)
	}
}
