package ui

import (
	"testing"

	"github.com/nibzard/todos-go/internal/todo"
)

func newTestController(t *testing.T, opts ...ControllerOption) (*todo.Store, *Controller) {
	t.Helper()
	store := todo.NewStore()
	c := NewController(store, opts...)
	t.Cleanup(c.Close)
	return store, c
}

func values(s todo.Snapshot) []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.Value
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCommit(t *testing.T) {
	_, c := newTestController(t)

	if c.Commit() {
		t.Error("empty buffer should not reach the store")
	}

	c.SetInput("  buy milk ")
	if !c.Commit() {
		t.Fatal("non-empty buffer should commit")
	}
	if c.Input() != "" {
		t.Errorf("buffer not cleared: %q", c.Input())
	}
	if got := values(c.Tasks()); !equalStrings(got, []string{"buy milk"}) {
		t.Errorf("tasks: got %v", got)
	}

	c.SetInput("   ")
	c.Commit()
	if c.Input() != "" {
		t.Error("whitespace buffer should still be cleared")
	}
	if len(c.Tasks()) != 1 {
		t.Errorf("whitespace commit added a task: %v", values(c.Tasks()))
	}
}

func TestFilterScenario(t *testing.T) {
	_, c := newTestController(t)
	for _, v := range []string{"a", "b"} {
		c.SetInput(v)
		c.Commit()
	}
	b := c.Tasks()[1]
	c.Toggle(b.ID)

	c.SetFilter(todo.FilterActive)
	if got := values(c.Visible()); !equalStrings(got, []string{"a"}) {
		t.Errorf("active: got %v, want [a]", got)
	}

	c.SetFilter(todo.FilterCompleted)
	if got := values(c.Visible()); !equalStrings(got, []string{"b"}) {
		t.Errorf("completed: got %v, want [b]", got)
	}

	if got := c.FooterCount(); got != "1 items left!" {
		t.Errorf("footer: got %q, want %q", got, "1 items left!")
	}
}

func TestViewFollowsStoreChanges(t *testing.T) {
	store, c := newTestController(t, WithFilter(todo.FilterActive))

	store.Add("from elsewhere")
	if got := values(c.Visible()); !equalStrings(got, []string{"from elsewhere"}) {
		t.Fatalf("visible after add: got %v", got)
	}

	store.SetAllCompleted(true)
	if len(c.Visible()) != 0 {
		t.Errorf("active view should be empty, got %v", values(c.Visible()))
	}
	if !c.ShowFooter() {
		t.Error("footer should show while the collection is non-empty")
	}
}

func TestControllerSeesExistingTasks(t *testing.T) {
	store := todo.NewStore()
	store.Add("early")
	c := NewController(store)
	defer c.Close()

	if got := values(c.Visible()); !equalStrings(got, []string{"early"}) {
		t.Errorf("got %v, want [early]", got)
	}
}

func TestMasterCheckbox(t *testing.T) {
	_, c := newTestController(t)
	if c.MasterChecked() {
		t.Error("empty collection must leave the master checkbox unchecked")
	}

	c.SetAllCompleted(true)
	if c.MasterChecked() {
		t.Error("set-all on empty collection must stay unchecked")
	}

	c.SetInput("a")
	c.Commit()
	c.SetInput("b")
	c.Commit()

	c.ToggleAll()
	if !c.MasterChecked() {
		t.Error("toggle all should complete everything")
	}
	c.ToggleAll()
	if c.MasterChecked() || c.ItemsLeft() != 2 {
		t.Errorf("second toggle all should reopen everything, left=%d", c.ItemsLeft())
	}
}

func TestClearCompletedScenario(t *testing.T) {
	_, c := newTestController(t)
	c.SetInput("x")
	c.Commit()
	c.SetInput("y")
	c.Commit()

	c.ClearCompleted()
	if len(c.Tasks()) != 2 {
		t.Fatalf("nothing completed: got %d tasks, want 2", len(c.Tasks()))
	}

	for _, task := range c.Tasks() {
		c.Toggle(task.ID)
	}
	c.ClearCompleted()
	if len(c.Tasks()) != 0 {
		t.Errorf("got %d tasks, want 0", len(c.Tasks()))
	}
	if c.ShowFooter() {
		t.Error("footer should hide once the collection is empty")
	}
}

func TestRemove(t *testing.T) {
	_, c := newTestController(t)
	c.SetInput("a")
	c.Commit()
	c.Remove(c.Tasks()[0].ID)
	if len(c.Visible()) != 0 {
		t.Errorf("visible after remove: %v", values(c.Visible()))
	}
}

func TestCloseStopsUpdates(t *testing.T) {
	store, c := newTestController(t)
	c.Close()
	c.Close()

	store.Add("late")
	if len(c.Tasks()) != 0 {
		t.Errorf("closed controller still updated: %v", values(c.Tasks()))
	}
}

func TestNewControllerNilStorePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil store")
		}
	}()
	NewController(nil)
}
