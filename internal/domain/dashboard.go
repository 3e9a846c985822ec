package domain

// DashboardCounts are the entity totals shown on the landing page.
type DashboardCounts struct {
	Units           int64 `json:"units"`
	Guests          int64 `json:"guests"`
	Stays           int64 `json:"stays"`
	Payments        int64 `json:"payments"`
	MaintenanceLogs int64 `json:"maintenance_logs"`
	Employees       int64 `json:"employees"`
}
