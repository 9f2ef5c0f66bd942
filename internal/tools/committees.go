package tools

func committeeDefs() []Def {
	key := []Param{
		reqChamber(),
		reqStr("committeeCode", "The committee code"),
	}

	return []Def{
		{
			Name:        "list_committees",
			Description: "Lists committees across all congresses.",
			Path:        "/committee",
			Params:      merge(paging(), []Param{optChamber()}),
		},
		{
			Name:        "list_committees_by_chamber",
			Description: "Lists committees for a specific chamber.",
			Path:        "/committee/{chamber}",
			Params:      merge([]Param{reqChamber()}, paging()),
		},
		{
			Name:        "get_committee_details",
			Description: "Gets detailed information for a specific committee.",
			Path:        "/committee/{chamber}/{committeeCode}",
			Params:      key,
		},
		{
			Name:        "get_committee_bills",
			Description: "Gets the list of bills for a specific committee.",
			Path:        "/committee/{chamber}/{committeeCode}/bills",
			Params:      merge(key, paging()),
		},
		{
			Name:        "get_committee_members",
			Description: "Gets the list of members for a specific committee.",
			Path:        "/committee/{chamber}/{committeeCode}/members",
			Params:      merge(key, paging()),
		},
	}
}
