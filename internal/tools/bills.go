package tools

func billType() Param {
	return reqStr("billType", "Type: 'hr', 's', 'hjres', 'sjres', etc.")
}

func billDefs() []Def {
	key := []Param{
		congressNum(),
		billType(),
		reqInt("billNumber", "The bill's assigned number"),
	}

	// Sub-resource suffixes all share the identifying path plus paging.
	sub := func(name, suffix, what string) Def {
		return Def{
			Name:        name,
			Description: "Gets the list of " + what + " for a specific bill.",
			Path:        "/bill/{congress}/{billType}/{billNumber}/" + suffix,
			Params:      merge(key, paging()),
		}
	}

	return []Def{
		{
			Name:        "list_bills",
			Description: "Lists bills across all congresses, sorted by date of latest action by default.",
			Path:        "/bill",
			Params:      merge(paging(), dateRange(), []Param{sortOrder()}),
		},
		{
			Name:        "list_bills_by_congress",
			Description: "Lists bills for a specific congress, sorted by date of latest action by default.",
			Path:        "/bill/{congress}",
			Params:      merge([]Param{congressNum()}, paging(), dateRange(), []Param{sortOrder()}),
		},
		{
			Name:        "list_bills_by_type",
			Description: "Lists bills for a specific congress and bill type.",
			Path:        "/bill/{congress}/{billType}",
			Params:      merge([]Param{congressNum(), billType()}, paging(), dateRange(), []Param{sortOrder()}),
		},
		{
			Name:        "get_bill_details",
			Description: "Gets detailed information for a specific bill.",
			Path:        "/bill/{congress}/{billType}/{billNumber}",
			Params:      key,
		},
		sub("get_bill_actions", "actions", "actions"),
		sub("get_bill_amendments", "amendments", "amendments"),
		sub("get_bill_committees", "committees", "committees"),
		sub("get_bill_cosponsors", "cosponsors", "cosponsors"),
		sub("get_bill_related_bills", "relatedbills", "related bills"),
		sub("get_bill_subjects", "subjects", "subjects"),
		sub("get_bill_summaries", "summaries", "summaries"),
		sub("get_bill_text", "text", "text versions"),
		sub("get_bill_titles", "titles", "titles"),
	}
}
