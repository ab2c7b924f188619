// File: slicex.go
// Title: Slice Utilities
// Description: Generic slice helpers used by the AST analysis functions to
//              filter, deduplicate and sort collected names.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package slicex

import (
	"cmp"
	"slices"
)

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element of the slice
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns a new slice with duplicates removed, keeping first occurrences
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Sort returns a sorted copy of the slice
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := slices.Clone(slice)
	slices.Sort(result)
	return result
}

// SortedUnique returns the distinct elements of slice in ascending order
func SortedUnique[T cmp.Ordered](slice []T) []T {
	return Sort(Unique(slice))
}
