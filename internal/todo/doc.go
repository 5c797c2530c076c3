// Package todo owns the in-memory task collection and its mutations.
//
// A Store holds an ordered list of tasks. New tasks are appended, so
// insertion order is the display order. Every task gets an ID from a
// monotonic counter owned by the store; IDs are never reused, even after
// the task is removed.
//
// # Operations
//
// The store exposes five mutations:
//
//   - Add appends a task built from trimmed text (empty text is ignored)
//   - Toggle flips one task's completion flag
//   - Remove deletes one task
//   - SetAllCompleted sets every task's completion flag
//   - ClearCompleted deletes every completed task
//
// None of them can fail. Unknown IDs and empty text are silently ignored.
// Each call returns the resulting Snapshot and notifies subscribers with
// the same Snapshot before returning.
//
// # Filters
//
// A Filter ("all", "active", "completed") projects a Snapshot into the
// visible subset. Filters are not part of the store; the view that owns
// the selection applies it to each Snapshot it receives.
package todo
