package tools

func committeeReportDefs() []Def {
	return []Def{
		{
			Name:        "list_committee_reports",
			Description: "Lists committee reports across all congresses.",
			Path:        "/committee-report",
			Params:      merge(paging(), dateRange()),
		},
		{
			Name:        "list_committee_reports_by_congress",
			Description: "Lists committee reports for a specific congress.",
			Path:        "/committee-report/{congress}",
			Params: merge([]Param{congressNum()}, paging(), dateRange(), []Param{
				optBool("conference", "Filter to include only conference reports"),
			}),
		},
		{
			Name:        "list_committee_reports_by_type",
			Description: "Lists committee reports for a specific congress and report type.",
			Path:        "/committee-report/{congress}/{reportType}",
			Params: merge([]Param{
				congressNum(),
				reqStr("reportType", "The report type code"),
			}, paging(), dateRange()),
		},
		{
			Name:        "get_committee_report_details",
			Description: "Gets detailed information for a specific committee report.",
			Path:        "/committee-report/{congress}/{reportType}/{reportNumber}",
			Params: []Param{
				congressNum(),
				reqStr("reportType", "The report type code"),
				reqInt("reportNumber", "The report number"),
			},
		},
	}
}
