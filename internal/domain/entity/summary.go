package entity

// SalesSummary holds the KPIs and grouped sums computed from a filtered view.
type SalesSummary struct {
	TotalSales      float64 `json:"total_sales"`
	TotalQuantity   int     `json:"total_quantity"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	OrderCount      int     `json:"order_count"`
	UniqueCustomers int     `json:"unique_customers"`

	SalesByDay      []GroupTotal `json:"sales_by_day"`
	SalesByMonth    []GroupTotal `json:"sales_by_month"`
	SalesByRegion   []GroupTotal `json:"sales_by_region"`
	SalesByCategory []GroupTotal `json:"sales_by_category"`
	TopProducts     []GroupTotal `json:"top_products"`
	TopCustomers    []GroupTotal `json:"top_customers"`
	SalesByCountry  []GroupTotal `json:"sales_by_country"`
}

// Empty reports whether the summary was computed from an empty filtered view.
func (s SalesSummary) Empty() bool {
	return s.OrderCount == 0
}
