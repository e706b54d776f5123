package domain

// DashboardStats aggregates fleet and booking counters for the admin view.
type DashboardStats struct {
	Equipment struct {
		Total       int32 `json:"total"`
		Available   int32 `json:"available"`
		Rented      int32 `json:"rented"`
		Maintenance int32 `json:"maintenance"`
	} `json:"equipment"`
	Reservations struct {
		Total    int32 `json:"total"`
		Pending  int32 `json:"pending"`
		Approved int32 `json:"approved"`
	} `json:"reservations"`
	RevenueCents int64 `json:"revenue_cents"`
}
