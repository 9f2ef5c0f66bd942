package tools

func memberDefs() []Def {
	bioguide := reqStr("bioguideId", "The member's bioguide ID")

	return []Def{
		{
			Name:        "list_members",
			Description: "Lists members across all congresses.",
			Path:        "/member",
			Params: merge(paging(), dateRange(), []Param{
				optBool("currentMember", "Filter to only current members"),
			}),
		},
		{
			Name:        "get_member_details",
			Description: "Gets detailed information for a specific member.",
			Path:        "/member/{bioguideId}",
			Params:      []Param{bioguide},
		},
		{
			Name:        "get_member_sponsored_legislation",
			Description: "Gets the list of sponsored legislation for a specific member.",
			Path:        "/member/{bioguideId}/sponsored-legislation",
			Params:      merge([]Param{bioguide}, paging()),
		},
		{
			Name:        "get_member_cosponsored_legislation",
			Description: "Gets the list of cosponsored legislation for a specific member.",
			Path:        "/member/{bioguideId}/cosponsored-legislation",
			Params:      merge([]Param{bioguide}, paging()),
		},
		{
			Name:        "list_members_by_congress",
			Description: "Lists members for a specific congress.",
			Path:        "/member/congress/{congress}",
			Params:      merge([]Param{congressNum()}, paging()),
		},
	}
}
