package tools

func committeeMeetingDefs() []Def {
	return []Def{
		{
			Name:        "list_committee_meetings",
			Description: "Lists committee meetings across all congresses.",
			Path:        "/committee-meeting",
			Params:      merge(paging(), dateRange()),
		},
		{
			Name:        "list_committee_meetings_by_congress",
			Description: "Lists committee meetings for a specific congress.",
			Path:        "/committee-meeting/{congress}",
			Params:      merge([]Param{congressNum()}, paging(), dateRange()),
		},
		{
			Name:        "list_committee_meetings_by_chamber",
			Description: "Lists committee meetings for a specific congress and chamber.",
			Path:        "/committee-meeting/{congress}/{chamber}",
			Params:      merge([]Param{congressNum(), reqChamber()}, paging(), dateRange()),
		},
		{
			Name:        "get_committee_meeting_details",
			Description: "Gets detailed information for a specific committee meeting.",
			Path:        "/committee-meeting/{congress}/{chamber}/{eventId}",
			Params: []Param{
				congressNum(),
				reqChamber(),
				reqStr("eventId", "The event ID"),
			},
		},
	}
}
