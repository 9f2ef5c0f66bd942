package tools

func crsReportDefs() []Def {
	return []Def{
		{
			Name:        "list_crs_reports",
			Description: "Lists Congressional Research Service reports.",
			Path:        "/crsreport",
			Params:      paging(),
		},
		{
			Name:        "get_crs_report_details",
			Description: "Gets detailed information for a specific CRS report.",
			Path:        "/crsreport/{reportNumber}",
			Params:      []Param{reqStr("reportNumber", "The report number")},
		},
	}
}
