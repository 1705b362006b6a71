// Package tally counts and groups records by a categorical key.
package tally

import (
	"cmp"
	"slices"
)

// Result holds per-key counts. Every declared key is present, even at
// zero. Records whose key was not declared are counted in Other so that
// Total always matches the input length.
type Result[K comparable] struct {
	Counts map[K]int
	Other  int
}

// Total returns the number of counted records, Other included.
func (r Result[K]) Total() int {
	total := r.Other
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Count returns the count for key, 0 when it was not declared.
func (r Result[K]) Count(key K) int {
	return r.Counts[key]
}

// Count tallies items by the key extracted with key, in a single pass.
func Count[T any, K comparable](items []T, keys []K, key func(T) K) Result[K] {
	result := Result[K]{Counts: make(map[K]int, len(keys))}
	for _, k := range keys {
		result.Counts[k] = 0
	}

	for _, item := range items {
		k := key(item)
		if _, declared := result.Counts[k]; declared {
			result.Counts[k]++
			continue
		}
		result.Other++
	}

	return result
}

// Group collects items by key, preserving input order inside every group.
func Group[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// SortedKeys returns the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
