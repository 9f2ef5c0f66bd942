package tools

func amendmentDefs() []Def {
	amendmentType := Param{
		Name:        "amendmentType",
		Type:        "string",
		Description: "Type: 'hamdt', 'samdt', or 'suamdt'",
		Enum:        []string{"hamdt", "samdt", "suamdt"},
		Required:    true,
	}
	key := []Param{
		congressNum(),
		amendmentType,
		reqInt("amendmentNumber", "The amendment's assigned number"),
	}

	return []Def{
		{
			Name:        "list_amendments",
			Description: "Lists amendments across all congresses, sorted by date of latest action.",
			Path:        "/amendment",
			Params:      merge(paging(), dateRange()),
		},
		{
			Name:        "list_amendments_by_congress",
			Description: "Lists amendments for a specific congress, sorted by date of latest action.",
			Path:        "/amendment/{congress}",
			Params:      merge([]Param{congressNum()}, paging(), dateRange()),
		},
		{
			Name:        "list_amendments_by_type",
			Description: "Lists amendments for a specific congress and type, sorted by date of latest action.",
			Path:        "/amendment/{congress}/{amendmentType}",
			Params:      merge([]Param{congressNum(), amendmentType}, paging(), dateRange()),
		},
		{
			Name:        "get_amendment_details",
			Description: "Gets detailed information for a specific amendment.",
			Path:        "/amendment/{congress}/{amendmentType}/{amendmentNumber}",
			Params:      key,
		},
		{
			Name:        "get_amendment_actions",
			Description: "Gets the list of actions for a specific amendment.",
			Path:        "/amendment/{congress}/{amendmentType}/{amendmentNumber}/actions",
			Params:      merge(key, paging()),
		},
		{
			Name:        "get_amendment_cosponsors",
			Description: "Gets the list of cosponsors for a specific amendment.",
			Path:        "/amendment/{congress}/{amendmentType}/{amendmentNumber}/cosponsors",
			Params:      merge(key, paging()),
		},
		{
			Name:        "get_amendments_to_amendment",
			Description: "Gets the list of amendments *to* a specific amendment.",
			Path:        "/amendment/{congress}/{amendmentType}/{amendmentNumber}/amendments",
			Params:      merge(key, paging()),
		},
		{
			Name:        "get_amendment_text",
			Description: "Gets the list of text versions for a specific amendment (117th Congress onwards).",
			Path:        "/amendment/{congress}/{amendmentType}/{amendmentNumber}/text",
			Params: merge([]Param{
				reqInt("congress", "Congress number (117 onwards for this endpoint)"),
				{
					Name:        "amendmentType",
					Type:        "string",
					Description: "Type: 'hamdt' or 'samdt'",
					Enum:        []string{"hamdt", "samdt"},
					Required:    true,
				},
				reqInt("amendmentNumber", "The amendment's assigned number"),
			}, paging()),
		},
	}
}
