package tools

// Shared parameter specs. Descriptions follow the upstream API docs;
// limit and offset carry the defaults every list endpoint uses.

func reqInt(name, desc string) Param {
	return Param{Name: name, Type: "integer", Description: desc, Required: true}
}

func reqStr(name, desc string) Param {
	return Param{Name: name, Type: "string", Description: desc, Required: true}
}

func optStr(name, desc string) Param {
	return Param{Name: name, Type: "string", Description: desc}
}

func optBool(name, desc string) Param {
	return Param{Name: name, Type: "boolean", Description: desc}
}

func congressNum() Param {
	return reqInt("congress", "The congress number (e.g., 117)")
}

func reqChamber() Param {
	return Param{
		Name:        "chamber",
		Type:        "string",
		Description: "Chamber: 'house', 'senate', or 'joint'",
		Enum:        []string{"house", "senate", "joint"},
		Required:    true,
	}
}

func optChamber() Param {
	p := reqChamber()
	p.Required = false
	return p
}

func paging() []Param {
	return []Param{
		{Name: "limit", Type: "integer", Description: "Number of records (max 250)", Default: "100"},
		{Name: "offset", Type: "integer", Description: "Starting record index (0-based)", Default: "0"},
	}
}

func dateRange() []Param {
	return []Param{
		optStr("fromDateTime", "Start date filter (YYYY-MM-DDTHH:mm:ssZ)"),
		optStr("toDateTime", "End date filter (YYYY-MM-DDTHH:mm:ssZ)"),
	}
}

func sortOrder() Param {
	return optStr("sort", "Sort order ('updateDate+asc' or 'updateDate+desc')")
}

// merge flattens parameter groups into one spec list, preserving order.
func merge(groups ...[]Param) []Param {
	var out []Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
