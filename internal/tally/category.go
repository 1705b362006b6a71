package tally

import (
	"cmp"
	"slices"
)

// Application statuses.
const (
	StatusPending  = "PENDING"
	StatusReviewed = "REVIEWED"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"

	// OtherLabel is shown for records whose status is not declared.
	OtherLabel = "Other"
)

// Category is one member of a closed set of status tags.
type Category struct {
	Key    string
	Label  string
	Weight int
}

// Categories is a closed set; lookups never fail, unknown keys fall back.
type Categories []Category

// ApplicationStatuses is the status set of a job application.
var ApplicationStatuses = Categories{
	{Key: StatusPending, Label: "Pending", Weight: 0},
	{Key: StatusReviewed, Label: "Reviewed", Weight: 1},
	{Key: StatusAccepted, Label: "Accepted", Weight: 2},
	{Key: StatusRejected, Label: "Rejected", Weight: 3},
}

// Keys returns category keys in declaration order.
func (c Categories) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, cat := range c {
		keys = append(keys, cat.Key)
	}
	return keys
}

// Lookup finds a category by key.
func (c Categories) Lookup(key string) (Category, bool) {
	for _, cat := range c {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Contains reports whether key is declared.
func (c Categories) Contains(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Label returns the display label of key, or OtherLabel when it is unknown.
func (c Categories) Label(key string) string {
	if cat, ok := c.Lookup(key); ok {
		return cat.Label
	}
	return OtherLabel
}

// Weight returns the display weight of key. Unknown keys sort after every category.
func (c Categories) Weight(key string) int {
	if cat, ok := c.Lookup(key); ok {
		return cat.Weight
	}
	heaviest := 0
	for _, cat := range c {
		heaviest = max(heaviest, cat.Weight)
	}
	return heaviest + 1
}

// Sorted returns a copy ordered by weight, ties keeping declaration order.
func (c Categories) Sorted() Categories {
	sorted := slices.Clone(c)
	slices.SortStableFunc(sorted, func(a, b Category) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
	return sorted
}

// Statuses counts items per declared category.
func Statuses[T any](items []T, cats Categories, status func(T) string) Result[string] {
	return Count(items, cats.Keys(), status)
}
