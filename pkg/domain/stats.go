package domain

// DashboardStats are the platform-wide totals shown on the admin landing view.
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	TotalCustomers int     `json:"total_customers"`
	TotalShops     int     `json:"total_shops"`
	TotalProducts  int     `json:"total_products"`
	TotalReviews   int     `json:"total_reviews"`
	MonthlyGrowth  float64 `json:"monthly_growth"`
}
