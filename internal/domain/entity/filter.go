package entity

import "time"

// FilterSelection is the set of predicates a user picked for one interaction.
// It is rebuilt on every run and never persisted.
type FilterSelection struct {
	Start      time.Time           `json:"start"`
	End        time.Time           `json:"end"`
	Regions    map[string]struct{} `json:"-"`
	Categories map[string]struct{} `json:"-"`
	Customers  map[string]struct{} `json:"-"`
	SearchTerm string              `json:"search_term,omitempty"`
	Theme      Theme               `json:"theme"`
}

// Theme only affects terminal styling, never the data.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValueSet builds a membership set from a list of values.
func ValueSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// SetValues returns the members of a set as a sorted-insertion-free slice.
// Order is not significant; callers that display it sort first.
func SetValues(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	return values
}
