package tools

func treatyDefs() []Def {
	key := []Param{
		congressNum(),
		reqInt("treatyNumber", "The treaty number"),
	}

	return []Def{
		{
			Name:        "list_treaties",
			Description: "Lists treaties across all congresses.",
			Path:        "/treaty",
			Params:      paging(),
		},
		{
			Name:        "list_treaties_by_congress",
			Description: "Lists treaties for a specific congress.",
			Path:        "/treaty/{congress}",
			Params:      merge([]Param{congressNum()}, paging()),
		},
		{
			Name:        "get_treaty_details",
			Description: "Gets detailed information for a specific treaty.",
			Path:        "/treaty/{congress}/{treatyNumber}",
			Params:      key,
		},
		{
			Name:        "get_treaty_actions",
			Description: "Gets the list of actions for a specific treaty.",
			Path:        "/treaty/{congress}/{treatyNumber}/actions",
			Params:      merge(key, paging()),
		},
	}
}
