package tools

func communicationDefs() []Def {
	key := []Param{
		congressNum(),
		reqStr("communicationType", "The communication type code"),
		reqInt("communicationNumber", "The communication number"),
	}

	return []Def{
		{
			Name:        "list_house_communications",
			Description: "Lists House communications across all congresses.",
			Path:        "/house-communication",
			Params:      paging(),
		},
		{
			Name:        "list_house_communications_by_congress",
			Description: "Lists House communications for a specific congress.",
			Path:        "/house-communication/{congress}",
			Params:      merge([]Param{congressNum()}, paging()),
		},
		{
			Name:        "get_house_communication_details",
			Description: "Gets detailed information for a specific House communication.",
			Path:        "/house-communication/{congress}/{communicationType}/{communicationNumber}",
			Params:      key,
		},
		{
			Name:        "list_senate_communications",
			Description: "Lists Senate communications across all congresses.",
			Path:        "/senate-communication",
			Params:      paging(),
		},
		{
			Name:        "get_senate_communication_details",
			Description: "Gets detailed information for a specific Senate communication.",
			Path:        "/senate-communication/{congress}/{communicationType}/{communicationNumber}",
			Params:      key,
		},
		{
			Name:        "list_senate_communications_by_congress",
			Description: "Lists Senate communications for a specific congress.",
			Path:        "/senate-communication/{congress}",
			Params:      merge([]Param{congressNum()}, paging()),
		},
	}
}
