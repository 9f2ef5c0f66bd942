package tools

import (
	"github.com/codexhq/congress-mcp-server/internal/congress"
	"github.com/codexhq/congress-mcp-server/internal/mcp"
	"github.com/codexhq/congress-mcp-server/internal/protocol"
)

// Defs returns the full declarative tool catalog, grouped by upstream
// resource family and in a stable order.
func Defs() []Def {
	return flatten(
		amendmentDefs(),
		billDefs(),
		committeeDefs(),
		committeeReportDefs(),
		committeePrintDefs(),
		committeeMeetingDefs(),
		memberDefs(),
		nominationDefs(),
		treatyDefs(),
		congressionalRecordDefs(),
		congressDefs(),
		summariesDefs(),
		hearingDefs(),
		communicationDefs(),
		houseRequirementDefs(),
		crsReportDefs(),
	)
}

// All binds every catalog entry to the shared client.
func All(client *congress.Client) []mcp.Tool {
	defs := Defs()
	out := make([]mcp.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, newAPITool(client, d))
	}
	return out
}

// Descriptors returns the MCP descriptors for the whole catalog without
// binding a client. Used by the manifest generator and tests.
func Descriptors() []protocol.ToolDescriptor {
	defs := Defs()
	out := make([]protocol.ToolDescriptor, 0, len(defs))
	for _, d := range defs {
		out = append(out, (&apiTool{def: d}).Descriptor())
	}
	return out
}

func flatten(groups ...[]Def) []Def {
	var out []Def
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
