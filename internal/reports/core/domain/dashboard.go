package domain

// KPI compares one figure between the requested period and the one before it.
// DeltaPct is nil when either side is missing or the previous value is zero.
type KPI struct {
	Current  *float64
	Previous *float64
	DeltaPct *float64
}

type DashboardKPIs struct {
	AvgResponseTimeSeconds KPI
	TotalTickets           KPI
	CSAT                   KPI
	ActiveTickets          KPI
}

type SeriesPoint struct {
	Date  string
	Value float64
}

type TagCount struct {
	Name  string
	Count int64
}

type StaffRow struct {
	Name                string
	ResponseCount       int64
	ResponseTimeMinutes int64
	AppreciationsCount  int64
}

type DashboardSummary struct {
	Current  DateRange
	Previous DateRange
	KPIs     DashboardKPIs

	Volume       []SeriesPoint
	ResponseTime []SeriesPoint // minutes
	TopTags      []TagCount
	Staff        []StaffRow

	// FailedBrands lists brands missing from any current-period report.
	FailedBrands []string
}
