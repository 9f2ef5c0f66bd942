package tools

func hearingDefs() []Def {
	return []Def{
		{
			Name:        "list_hearings",
			Description: "Lists hearings across all congresses.",
			Path:        "/hearing",
			Params:      paging(),
		},
		{
			Name:        "list_hearings_by_congress",
			Description: "Lists hearings for a specific congress.",
			Path:        "/hearing/{congress}",
			Params: merge([]Param{congressNum()}, paging(), []Param{
				optChamber(),
				optStr("committee", "Committee code"),
			}),
		},
		{
			Name:        "get_hearing_details",
			Description: "Gets detailed information for a specific hearing.",
			Path:        "/hearing/{congress}/{chamber}/{jacketNumber}",
			Params: []Param{
				congressNum(),
				reqChamber(),
				reqStr("jacketNumber", "The hearing jacket number"),
			},
		},
	}
}
