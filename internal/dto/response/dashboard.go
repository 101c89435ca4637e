package response

// DashboardResponse carries the admin overview cards. All figures are
// re-derived from the full reservation snapshot on every request; there
// is no incremental bookkeeping behind them.
type DashboardResponse struct {
	TotalReservations   int     `json:"total_reservations"`
	PendingPaymentTotal float64 `json:"pending_payment_total"`
	ConfirmedCount      int     `json:"confirmed_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	RecentCount         int     `json:"recent_count"`
}
