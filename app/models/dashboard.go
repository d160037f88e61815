package models

// DashboardStats holds the aggregate counts shown on the dashboard.
type DashboardStats struct {
	TotalUsers       int   `json:"total_users"`
	TotalChildren    int   `json:"total_children"`
	TotalBusinesses  int   `json:"total_businesses"`
	TotalSites       int   `json:"total_sites"`
	TotalAgencies    int   `json:"total_agencies"`
	TotalAttendances int   `json:"total_attendances"`
	TotalPaidCents   int64 `json:"total_paid_cents"`
	OpenCaseCycles   int   `json:"open_case_cycles"`
}
