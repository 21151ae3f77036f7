package entity

import "time"

// SaleRecord represents one row of the sales dataset.
type SaleRecord struct {
	Date       time.Time `json:"date"`
	Region     string    `json:"region"`
	Category   string    `json:"category"`
	Customer   string    `json:"customer"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	TotalSales float64   `json:"total_sales"`
	Country    string    `json:"country"`
}

// GroupTotal is TotalSales summed over one value of a categorical dimension.
type GroupTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}
