package gnssdist

import (
	"sort"
)

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the sorted elements of s.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}

// Unique returns the elements of list in their original order with
// later duplicates and empty strings dropped.
func Unique(list []string) []string {
	seen := NewStringSet()
	u := make([]string, 0, len(list))
	for _, x := range list {
		if x == "" || seen.Contains(x) {
			continue
		}
		seen.Add(x)
		u = append(u, x)
	}
	return u
}
