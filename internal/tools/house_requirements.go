package tools

func houseRequirementDefs() []Def {
	requirement := reqInt("requirementNumber", "The requirement number")

	return []Def{
		{
			Name:        "list_house_requirements",
			Description: "Lists House requirements.",
			Path:        "/house-requirement",
			Params:      paging(),
		},
		{
			Name:        "get_house_requirement_details",
			Description: "Gets detailed information for a specific House requirement.",
			Path:        "/house-requirement/{requirementNumber}",
			Params:      []Param{requirement},
		},
		{
			Name:        "get_house_requirement_matching_communications",
			Description: "Gets the list of matching communications for a specific House requirement.",
			Path:        "/house-requirement/{requirementNumber}/matching-communications",
			Params:      merge([]Param{requirement}, paging()),
		},
	}
}
