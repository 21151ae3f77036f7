package usecase

import (
	"testing"
	"time"

	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []entity.SaleRecord {
	return []entity.SaleRecord{
		{Date: day(2024, 1, 1), Region: "US", Category: "A", Customer: "X", Product: "Widget", Quantity: 2, TotalSales: 20, Country: "Brazil"},
		{Date: day(2024, 2, 1), Region: "EU", Category: "B", Customer: "Y", Product: "Gadget", Quantity: 1, TotalSales: 15, Country: "India"},
		{Date: day(2024, 2, 15), Region: "US", Category: "B", Customer: "Z", Product: "Gizmo", Quantity: 3, TotalSales: 45, Country: "Germany"},
		{Date: day(2024, 3, 10), Region: "APAC", Category: "A", Customer: "X", Product: "Widget Pro", Quantity: 5, TotalSales: 100, Country: "Canada"},
	}
}

func TestFilterRecords(t *testing.T) {
	records := sampleRecords()
	_ = DefaultSelection(records)

	tests := []struct {
		name     string
		mutate   func(s *entity.FilterSelection)
		expected []string // expected products, in input order
	}{
		{
			name:     "default selection keeps everything",
			mutate:   func(s *entity.FilterSelection) {},
			expected: []string{"Widget", "Gadget", "Gizmo", "Widget Pro"},
		},
		{
			name: "date range bounds are inclusive",
			mutate: func(s *entity.FilterSelection) {
				s.Start = day(2024, 2, 1)
				s.End = day(2024, 2, 15)
			},
			expected: []string{"Gadget", "Gizmo"},
		},
		{
			name: "start after end yields empty",
			mutate: func(s *entity.FilterSelection) {
				s.Start = day(2024, 3, 1)
				s.End = day(2024, 1, 1)
			},
			expected: []string{},
		},
		{
			name: "region membership",
			mutate: func(s *entity.FilterSelection) {
				s.Regions = entity.ValueSet([]string{"US"})
			},
			expected: []string{"Widget", "Gizmo"},
		},
		{
			name: "empty region set matches nothing",
			mutate: func(s *entity.FilterSelection) {
				s.Regions = entity.ValueSet(nil)
			},
			expected: []string{},
		},
		{
			name: "empty category set matches nothing",
			mutate: func(s *entity.FilterSelection) {
				s.Categories = entity.ValueSet(nil)
			},
			expected: []string{},
		},
		{
			name: "empty customer set matches nothing",
			mutate: func(s *entity.FilterSelection) {
				s.Customers = entity.ValueSet(nil)
			},
			expected: []string{},
		},
		{
			name: "search matches product case-insensitively",
			mutate: func(s *entity.FilterSelection) {
				s.SearchTerm = "wIdGeT"
			},
			expected: []string{"Widget", "Widget Pro"},
		},
		{
			name: "search matches customer too (OR semantics)",
			mutate: func(s *entity.FilterSelection) {
				s.SearchTerm = "y"
			},
			expected: []string{"Gadget"},
		},
		{
			name: "blank search term is a no-op",
			mutate: func(s *entity.FilterSelection) {
				s.SearchTerm = "   "
			},
			expected: []string{"Widget", "Gadget", "Gizmo", "Widget Pro"},
		},
		{
			name: "filters combine",
			mutate: func(s *entity.FilterSelection) {
				s.Start = day(2024, 1, 1)
				s.End = day(2024, 2, 28)
				s.Regions = entity.ValueSet([]string{"US", "EU"})
				s.Categories = entity.ValueSet([]string{"B"})
			},
			expected: []string{"Gadget", "Gizmo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := DefaultSelection(records)
			tt.mutate(&selection)

			filtered := FilterRecords(records, selection)

			products := []string{}
			for _, record := range filtered {
				products = append(products, record.Product)
			}
			assert.Equal(t, tt.expected, products)

			// Invariants: dates inside the range, attributes inside the sets.
			for _, record := range filtered {
				assert.False(t, record.Date.Before(selection.Start))
				assert.False(t, record.Date.After(selection.End))
				assert.Contains(t, selection.Regions, record.Region)
				assert.Contains(t, selection.Categories, record.Category)
				assert.Contains(t, selection.Customers, record.Customer)
			}
		})
	}
}

func TestDefaultSelection(t *testing.T) {
	records := sampleRecords()
	selection := DefaultSelection(records)

	assert.Equal(t, day(2024, 1, 1), selection.Start)
	assert.Equal(t, day(2024, 3, 10), selection.End)
	assert.Len(t, selection.Regions, 3)
	assert.Len(t, selection.Categories, 2)
	assert.Len(t, selection.Customers, 3)
	assert.Equal(t, entity.ThemeLight, selection.Theme)
	assert.Empty(t, selection.SearchTerm)
}

func TestDefaultSelectionEmptyDataset(t *testing.T) {
	selection := DefaultSelection(nil)

	assert.True(t, selection.Start.IsZero())
	assert.True(t, selection.End.IsZero())
	assert.Empty(t, selection.Regions)
	assert.Empty(t, FilterRecords(nil, selection))
}

func TestDistinctValues(t *testing.T) {
	values := DistinctValues(sampleRecords(), func(r entity.SaleRecord) string { return r.Region })
	assert.Equal(t, []string{"APAC", "EU", "US"}, values)
}
