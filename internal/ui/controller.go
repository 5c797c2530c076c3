package ui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todos-go/internal/logging"
	"github.com/nibzard/todos-go/internal/todo"
)

// TaskStore is the part of *todo.Store the controller drives.
type TaskStore interface {
	Add(text string) todo.Snapshot
	Toggle(id todo.ID) todo.Snapshot
	Remove(id todo.ID) todo.Snapshot
	SetAllCompleted(completed bool) todo.Snapshot
	ClearCompleted() todo.Snapshot
	Tasks() todo.Snapshot
	Subscribe(fn todo.Observer) func()
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithFilter sets the initial filter selection.
func WithFilter(f todo.Filter) ControllerOption {
	return func(c *Controller) {
		c.filter = f
	}
}

// WithControllerLogger sets the logger for view events.
func WithControllerLogger(logger *log.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller holds the entry buffer and filter selection and keeps a
// filtered projection of the store in sync with every store notification.
type Controller struct {
	store       TaskStore
	logger      *log.Logger
	input       string
	filter      todo.Filter
	tasks       todo.Snapshot
	visible     todo.Snapshot
	unsubscribe func()
}

// NewController subscribes a controller to store. It panics if store is nil.
func NewController(store TaskStore, opts ...ControllerOption) *Controller {
	if store == nil {
		panic("ui: NewController requires a store")
	}
	c := &Controller{
		store:  store,
		logger: logging.Discard(),
		filter: todo.FilterAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tasks = store.Tasks()
	c.refresh()
	c.unsubscribe = store.Subscribe(c.onSnapshot)
	return c
}

// Close stops listening to the store.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) onSnapshot(snap todo.Snapshot) {
	c.tasks = snap
	c.refresh()
}

func (c *Controller) refresh() {
	c.visible = c.filter.Apply(c.tasks)
}

// Input returns the entry buffer.
func (c *Controller) Input() string {
	return c.input
}

// SetInput replaces the entry buffer.
func (c *Controller) SetInput(s string) {
	c.input = s
}

// Commit adds the entry buffer as a task and clears it. It does nothing
// when the buffer is empty and reports whether the store was called.
func (c *Controller) Commit() bool {
	if c.input == "" {
		return false
	}
	text := c.input
	c.input = ""
	c.store.Add(text)
	c.logger.Debug("commit", "text", text, "count", len(c.tasks))
	return true
}

// Filter returns the current filter selection.
func (c *Controller) Filter() todo.Filter {
	return c.filter
}

// SetFilter changes the filter selection and recomputes the view.
func (c *Controller) SetFilter(f todo.Filter) {
	if f != c.filter {
		c.logger.Debug("filter changed", "from", c.filter, "to", f)
	}
	c.filter = f
	c.refresh()
}

// Tasks returns the latest full collection.
func (c *Controller) Tasks() todo.Snapshot {
	return c.tasks
}

// Visible returns the tasks shown under the current filter.
func (c *Controller) Visible() todo.Snapshot {
	return c.visible
}

// MasterChecked reports the state of the toggle-all checkbox.
func (c *Controller) MasterChecked() bool {
	return c.tasks.AllCompleted()
}

// SetAllCompleted sets every task's completion flag.
func (c *Controller) SetAllCompleted(completed bool) {
	c.store.SetAllCompleted(completed)
}

// ToggleAll flips the toggle-all checkbox.
func (c *Controller) ToggleAll() {
	c.SetAllCompleted(!c.MasterChecked())
}

// Toggle flips one task.
func (c *Controller) Toggle(id todo.ID) {
	c.store.Toggle(id)
}

// Remove deletes one task.
func (c *Controller) Remove(id todo.ID) {
	c.store.Remove(id)
}

// ClearCompleted deletes every completed task.
func (c *Controller) ClearCompleted() {
	c.store.ClearCompleted()
}

// ShowFooter reports whether the footer is rendered.
func (c *Controller) ShowFooter() bool {
	return len(c.tasks) > 0
}

// ItemsLeft returns the number of tasks not yet completed.
func (c *Controller) ItemsLeft() int {
	return c.tasks.ItemsLeft()
}

// FooterCount returns the footer's live count.
func (c *Controller) FooterCount() string {
	return fmt.Sprintf("%d items left!", c.ItemsLeft())
}
