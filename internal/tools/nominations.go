package tools

func nominationDefs() []Def {
	key := []Param{
		congressNum(),
		reqInt("nominationNumber", "The nomination number"),
	}

	return []Def{
		{
			Name:        "list_nominations",
			Description: "Lists nominations across all congresses.",
			Path:        "/nomination",
			Params:      paging(),
		},
		{
			Name:        "list_nominations_by_congress",
			Description: "Lists nominations for a specific congress.",
			Path:        "/nomination/{congress}",
			Params:      merge([]Param{congressNum()}, paging()),
		},
		{
			Name:        "get_nomination_details",
			Description: "Gets detailed information for a specific nomination.",
			Path:        "/nomination/{congress}/{nominationNumber}",
			Params:      key,
		},
		{
			Name:        "get_nomination_actions",
			Description: "Gets the list of actions for a specific nomination.",
			Path:        "/nomination/{congress}/{nominationNumber}/actions",
			Params:      merge(key, paging()),
		},
	}
}
