package tools

func congressDefs() []Def {
	return []Def{
		{
			Name:        "list_congresses",
			Description: "Lists information about congresses.",
			Path:        "/congress",
			Params:      paging(),
		},
		{
			Name:        "get_congress",
			Description: "Gets information about a specific congress.",
			Path:        "/congress/{congress}",
			Params:      []Param{congressNum()},
		},
		{
			Name:        "get_current_congress",
			Description: "Gets information about the current congress.",
			Path:        "/congress/current",
		},
	}
}
