package tools

func congressionalRecordDefs() []Def {
	year := reqStr("year", "The year (YYYY)")
	month := reqStr("month", "The month (MM)")
	day := reqStr("day", "The day (DD)")

	return []Def{
		{
			Name:        "list_congressional_records",
			Description: "Lists Congressional Record entries.",
			Path:        "/congressional-record",
			Params:      paging(),
		},
		{
			Name:        "list_daily_congressional_records",
			Description: "Lists Daily Congressional Record articles for a specific volume and issue.",
			Path:        "/daily-congressional-record/{volumeNumber}/{issueNumber}/articles",
			Params: merge([]Param{
				reqInt("volumeNumber", "The volume number"),
				reqInt("issueNumber", "The issue number"),
			}, paging()),
		},
		{
			Name:        "list_bound_congressional_records",
			Description: "Lists Bound Congressional Record entries.",
			Path:        "/bound-congressional-record",
			Params:      paging(),
		},
		{
			Name:        "list_bound_congressional_records_by_year",
			Description: "Lists Bound Congressional Record entries for a specific year.",
			Path:        "/bound-congressional-record/{year}",
			Params:      merge([]Param{year}, paging()),
		},
		{
			Name:        "list_bound_congressional_records_by_month",
			Description: "Lists Bound Congressional Record entries for a specific year and month.",
			Path:        "/bound-congressional-record/{year}/{month}",
			Params:      merge([]Param{year, month}, paging()),
		},
		{
			Name:        "list_bound_congressional_records_by_day",
			Description: "Lists Bound Congressional Record entries for a specific date.",
			Path:        "/bound-congressional-record/{year}/{month}/{day}",
			Params:      merge([]Param{year, month, day}, paging()),
		},
	}
}
