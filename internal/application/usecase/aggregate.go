package usecase

import (
	"sort"

	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
)

// Summarize computes the KPI scalars and every grouped sum from a filtered
// view. topN bounds the product and customer rankings. Each grouping
// partitions the same rows, so its totals always sum to TotalSales.
func Summarize(filtered []entity.SaleRecord, topN int) entity.SalesSummary {
	summary := entity.SalesSummary{OrderCount: len(filtered)}

	customers := make(map[string]struct{})
	for _, record := range filtered {
		summary.TotalSales += record.TotalSales
		summary.TotalQuantity += record.Quantity
		customers[record.Customer] = struct{}{}
	}
	summary.UniqueCustomers = len(customers)
	if summary.OrderCount > 0 {
		summary.AvgOrderValue = summary.TotalSales / float64(summary.OrderCount)
	}

	summary.SalesByDay = groupTotals(filtered, byKey, func(r entity.SaleRecord) string {
		return r.Date.Format("2006-01-02")
	})
	summary.SalesByMonth = groupTotals(filtered, byKey, func(r entity.SaleRecord) string {
		return r.Date.Format("2006-01")
	})
	summary.SalesByRegion = groupTotals(filtered, byTotal, func(r entity.SaleRecord) string { return r.Region })
	summary.SalesByCategory = groupTotals(filtered, byTotal, func(r entity.SaleRecord) string { return r.Category })
	summary.TopProducts = topOf(groupTotals(filtered, byTotal, func(r entity.SaleRecord) string { return r.Product }), topN)
	summary.TopCustomers = topOf(groupTotals(filtered, byTotal, func(r entity.SaleRecord) string { return r.Customer }), topN)
	summary.SalesByCountry = groupTotals(filtered, byTotal, func(r entity.SaleRecord) string { return r.Country })

	return summary
}

type groupOrder int

const (
	// byKey orders groups lexicographically by key. Day and month keys are
	// zero-padded, so this is also chronological order.
	byKey groupOrder = iota
	// byTotal orders groups by descending total, ties broken by key.
	byTotal
)

func groupTotals(records []entity.SaleRecord, order groupOrder, key func(entity.SaleRecord) string) []entity.GroupTotal {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[key(record)] += record.TotalSales
	}

	groups := make([]entity.GroupTotal, 0, len(totals))
	for k, total := range totals {
		groups = append(groups, entity.GroupTotal{Key: k, Total: total})
	}

	sort.Slice(groups, func(i, j int) bool {
		if order == byTotal && groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

func topOf(groups []entity.GroupTotal, n int) []entity.GroupTotal {
	if n > 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}
