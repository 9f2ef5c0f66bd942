package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/codexhq/congress-mcp-server/internal/congress"
	"github.com/codexhq/congress-mcp-server/internal/protocol"
)

// Def declares one Congress.gov tool: its MCP surface plus the upstream
// route its arguments map to. Params listed in a route slot become path
// segments; everything else becomes a query parameter.
type Def struct {
	Name        string
	Description string
	// Path is the route template relative to the API base, with
	// {param} slots, e.g. /bill/{congress}/{billType}/{billNumber}.
	Path   string
	Params []Param
}

// Param describes a single tool argument.
type Param struct {
	Name        string
	Type        string // "integer", "string" or "boolean"
	Description string
	Enum        []string
	Required    bool
	// Default is sent verbatim when the argument is absent. Empty means
	// the parameter is omitted entirely when unset.
	Default string
}

// apiTool adapts a Def into an MCP tool backed by the shared client.
type apiTool struct {
	client *congress.Client
	def    Def
}

func newAPITool(client *congress.Client, def Def) *apiTool {
	return &apiTool{client: client, def: def}
}

func (t *apiTool) Descriptor() protocol.ToolDescriptor {
	props := make(map[string]protocol.JSONSchema, len(t.def.Params))
	var required []string
	for _, p := range t.def.Params {
		props[p.Name] = protocol.JSONSchema{
			Type:        p.Type,
			Description: p.Description,
			Enum:        p.Enum,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return protocol.ToolDescriptor{
		Name:        t.def.Name,
		Description: t.def.Description,
		InputSchema: &protocol.JSONSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
	}
}

func (t *apiTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	args, err := decodeArgs(raw)
	if err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	path := t.def.Path
	var params congress.Params
	for _, p := range t.def.Params {
		slot := "{" + p.Name + "}"
		val, ok := args[p.Name]
		if val == nil {
			ok = false
		}

		if strings.Contains(path, slot) {
			if !ok {
				return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: p.Name + " is required"}
			}
			s, cerr := coerce(p, val)
			if cerr != nil {
				return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: cerr.Error()}
			}
			path = strings.ReplaceAll(path, slot, url.PathEscape(s))
			continue
		}

		if !ok {
			if p.Default != "" {
				params = append(params, congress.Param{Key: p.Name, Value: p.Default})
			}
			continue
		}
		s, cerr := coerce(p, val)
		if cerr != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: cerr.Error()}
		}
		// Upstream distinguishes absent from empty: an explicit empty
		// value behaves as unset rather than going on the wire.
		if s == "" {
			if p.Default != "" {
				params = append(params, congress.Param{Key: p.Name, Value: p.Default})
			}
			continue
		}
		params = append(params, congress.Param{Key: p.Name, Value: s})
	}

	return protocol.TextResult(t.client.Get(ctx, path, params)), nil
}

func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// coerce renders an argument value as the wire string the upstream API
// expects. Booleans become the lowercase literals "true"/"false". No
// range or enum validation happens here: upstream is the authority.
func coerce(p Param, val any) (string, error) {
	switch p.Type {
	case "integer":
		switch v := val.(type) {
		case json.Number:
			return v.String(), nil
		case string:
			return v, nil
		}
		return "", fmt.Errorf("%s must be an integer", p.Name)
	case "boolean":
		switch v := val.(type) {
		case bool:
			if v {
				return "true", nil
			}
			return "false", nil
		case string:
			if v == "true" || v == "false" {
				return v, nil
			}
		}
		return "", fmt.Errorf("%s must be a boolean", p.Name)
	default:
		switch v := val.(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case bool:
			if v {
				return "true", nil
			}
			return "false", nil
		}
		return "", fmt.Errorf("%s must be a string", p.Name)
	}
}
