package usecase

import (
	"sort"
	"strings"

	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
)

// FilterRecords returns the rows of records matching selection: Date within
// [Start, End] inclusive, Region/Category/Customer each member of its selected
// set, and, when SearchTerm is non-empty, Product or Customer containing the
// term case-insensitively. An empty selected set matches nothing; Start after
// End yields an empty result.
func FilterRecords(records []entity.SaleRecord, selection entity.FilterSelection) []entity.SaleRecord {
	filtered := make([]entity.SaleRecord, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(selection.SearchTerm))

	for _, record := range records {
		if record.Date.Before(selection.Start) || record.Date.After(selection.End) {
			continue
		}
		if _, ok := selection.Regions[record.Region]; !ok {
			continue
		}
		if _, ok := selection.Categories[record.Category]; !ok {
			continue
		}
		if _, ok := selection.Customers[record.Customer]; !ok {
			continue
		}
		if term != "" && !matchesSearch(record, term) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func matchesSearch(record entity.SaleRecord, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(record.Product), lowerTerm) ||
		strings.Contains(strings.ToLower(record.Customer), lowerTerm)
}

// DefaultSelection mirrors the dashboard's opening state: the dataset's full
// date range and every distinct Region, Category and Customer selected.
func DefaultSelection(records []entity.SaleRecord) entity.FilterSelection {
	selection := entity.FilterSelection{
		Regions:    entity.ValueSet(DistinctValues(records, func(r entity.SaleRecord) string { return r.Region })),
		Categories: entity.ValueSet(DistinctValues(records, func(r entity.SaleRecord) string { return r.Category })),
		Customers:  entity.ValueSet(DistinctValues(records, func(r entity.SaleRecord) string { return r.Customer })),
		Theme:      entity.ThemeLight,
	}
	for i, record := range records {
		if i == 0 || record.Date.Before(selection.Start) {
			selection.Start = record.Date
		}
		if i == 0 || record.Date.After(selection.End) {
			selection.End = record.Date
		}
	}
	return selection
}

// DistinctValues returns the sorted distinct values of one record attribute.
func DistinctValues(records []entity.SaleRecord, attribute func(entity.SaleRecord) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, record := range records {
		v := attribute(record)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
