package types

// DashboardCountByGroup is a generic "N items per group" row used by the
// bar/pie charts (labs by type, labs by status, grants by agency).
type DashboardCountByGroup struct {
	GroupName string `json:"group_name"`
	Count     int64  `json:"count"`
}

// DashboardChartData is a single point of a time-series chart
// (publications per year, grant amount per year).
type DashboardChartData struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardSummary are the headline counters on the admin landing page.
type DashboardSummary struct {
	TotalLabs         int64 `json:"total_labs"`
	ActiveLabs        int64 `json:"active_labs"`
	TotalEquipment    int64 `json:"total_equipment"`
	TotalPublications int64 `json:"total_publications"`
	ActiveGrants      int64 `json:"active_grants"`
	UpcomingEvents    int64 `json:"upcoming_events"`
}
