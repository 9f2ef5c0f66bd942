package tools

func summariesDefs() []Def {
	return []Def{
		{
			Name:        "list_summaries",
			Description: "Lists bill summaries across all congresses, sorted by date of latest update.",
			Path:        "/summaries",
			Params:      merge(paging(), dateRange(), []Param{sortOrder()}),
		},
		{
			Name:        "list_summaries_by_congress",
			Description: "Lists bill summaries for a specific congress, sorted by date of latest update.",
			Path:        "/summaries/{congress}",
			Params:      merge([]Param{congressNum()}, paging(), dateRange(), []Param{sortOrder()}),
		},
		{
			Name:        "list_summaries_by_bill_type",
			Description: "Lists bill summaries for a specific congress and bill type.",
			Path:        "/summaries/{congress}/{billType}",
			Params:      merge([]Param{congressNum(), billType()}, paging(), dateRange(), []Param{sortOrder()}),
		},
	}
}
