package models

// Dashboard part names reported when a part could not be loaded
const (
	DashboardPartCategories = "categories"
	DashboardPartRecent     = "recent"
	DashboardPartStats      = "stats"
)

// Dashboard bundles everything the home page shows for one month
type Dashboard struct {
	Categories []Category    `json:"categories"`
	Recent     []Transaction `json:"recent"`
	Stats      *StatsView    `json:"stats"`
	Degraded   []string      `json:"degraded,omitempty"`
}

// IsDegraded reports whether any part fell back to its empty state
func (d *Dashboard) IsDegraded() bool {
	return len(d.Degraded) > 0
}
