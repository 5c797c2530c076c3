package todo

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a task within a store.
type ID uint64

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses a decimal task ID.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse task id %q: %w", s, err)
	}
	return ID(n), nil
}

// Task represents a single todo entry.
type Task struct {
	ID        ID     `json:"id"`
	Value     string `json:"value"`
	Completed bool   `json:"completed"`
}

// Snapshot is the full ordered collection at a point in time.
// Snapshots are copies; changing one never affects the store.
type Snapshot []Task

// ItemsLeft returns the number of tasks not yet completed.
func (s Snapshot) ItemsLeft() int {
	n := 0
	for _, t := range s {
		if !t.Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether the snapshot is non-empty and every task
// in it is completed.
func (s Snapshot) AllCompleted() bool {
	if len(s) == 0 {
		return false
	}
	for _, t := range s {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Find returns the task with the given ID.
func (s Snapshot) Find(id ID) (Task, bool) {
	for _, t := range s {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Index returns the position of the task with the given ID, or -1.
func (s Snapshot) Index(id ID) int {
	for i, t := range s {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter parses a filter name. Matching is case-insensitive and an
// empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterActive):
		return FilterActive, nil
	case string(FilterCompleted):
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter %q, must be one of: all, active, completed", s)
	}
}

// Label returns the button caption for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether a task is visible under the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the tasks visible under the filter, in collection order.
func (f Filter) Apply(s Snapshot) Snapshot {
	if f != FilterActive && f != FilterCompleted {
		return s.clone()
	}
	out := make(Snapshot, 0, len(s))
	for _, t := range s {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	all := Filters()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Prev returns the filter before f, wrapping around.
func (f Filter) Prev() Filter {
	all := Filters()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return FilterAll
}
