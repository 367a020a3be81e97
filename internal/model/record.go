// Package model holds the record types shared by the store and its front ends.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Record is a single addressable task entry.
type Record struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

// Details renders the record on a single line.
func (r Record) Details() string {
	done := "No"
	if r.Done {
		done = "Yes"
	}
	return fmt.Sprintf("id: %d; label: %s; done? %s", r.ID, r.Label, done)
}

// Counts summarizes a store at a point in time.
type Counts struct {
	Total      int `json:"total"`
	Incomplete int `json:"incomplete"`
}

// Done is the number of completed records.
func (c Counts) Done() int { return c.Total - c.Incomplete }

// ErrInvalidFilter is returned by ParseFilter for an unknown mode name.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter selects which records a listing returns.
// The zero value lists incomplete records only.
type Filter int

const (
	FilterIncomplete Filter = iota
	FilterAll
)

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	default:
		return "incomplete"
	}
}

// Match reports whether r belongs in a listing using f.
func (f Filter) Match(r Record) bool {
	return f == FilterAll || !r.Done
}

// ParseFilter maps a mode name to a Filter. "pending" is accepted as an
// alias of "incomplete".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "incomplete", "pending":
		return FilterIncomplete, nil
	case "all":
		return FilterAll, nil
	}
	return FilterIncomplete, fmt.Errorf("%w %q: must be one of incomplete, all", ErrInvalidFilter, s)
}
