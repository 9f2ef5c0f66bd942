package tools

func committeePrintDefs() []Def {
	return []Def{
		{
			Name:        "list_committee_prints",
			Description: "Lists committee prints across all congresses.",
			Path:        "/committee-print",
			Params:      merge(paging(), dateRange()),
		},
		{
			Name:        "list_committee_prints_by_congress",
			Description: "Lists committee prints for a specific congress.",
			Path:        "/committee-print/{congress}",
			Params:      merge([]Param{congressNum()}, paging(), dateRange()),
		},
		{
			Name:        "list_committee_prints_by_chamber",
			Description: "Lists committee prints for a specific congress and chamber.",
			Path:        "/committee-print/{congress}/{chamber}",
			Params:      merge([]Param{congressNum(), reqChamber()}, paging(), dateRange()),
		},
		{
			Name:        "get_committee_print_details",
			Description: "Gets detailed information for a specific committee print.",
			Path:        "/committee-print/{congress}/{chamber}/{jacketNumber}",
			Params: []Param{
				congressNum(),
				reqChamber(),
				reqStr("jacketNumber", "The jacket number"),
			},
		},
	}
}
