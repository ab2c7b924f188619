// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Tests for the generic slice helpers.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package slicex

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	got := Filter([]string{"x", "y", "x", "z"}, func(s string) bool { return s != "x" })
	if want := []string{"y", "z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
	if Filter[int](nil, func(int) bool { return true }) != nil {
		t.Error("Filter(nil) should be nil")
	}
	if Filter([]int{1}, nil) != nil {
		t.Error("Filter with nil predicate should be nil")
	}
}

func TestMap(t *testing.T) {
	got := Map([]rune{'+', '<'}, func(r rune) string { return string(r) })
	if want := []string{"+", "<"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestUniqueAndSort(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		uniq  []string
		sort  []string
	}{
		{"nil", nil, nil, nil},
		{"empty", []string{}, []string{}, []string{}},
		{"duplicates", []string{"g", "f", "g", "a"}, []string{"g", "f", "a"}, []string{"a", "f", "g"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unique(tt.input); !reflect.DeepEqual(got, tt.uniq) {
				t.Errorf("Unique() = %v, want %v", got, tt.uniq)
			}
			if got := SortedUnique(tt.input); !reflect.DeepEqual(got, tt.sort) {
				t.Errorf("SortedUnique() = %v, want %v", got, tt.sort)
			}
		})
	}
}

func TestSortDoesNotModifyInput(t *testing.T) {
	input := []int{3, 1, 2}
	got := Sort(input)
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Sort() = %v", got)
	}
	if !reflect.DeepEqual(input, []int{3, 1, 2}) {
		t.Errorf("input modified: %v", input)
	}
}
