package todo

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestAddTrimsAndAppends(t *testing.T) {
	s := NewStore()
	s.Add("first")
	snap := s.Add("  buy milk  ")

	if len(snap) != 2 {
		t.Fatalf("len: got %d, want 2", len(snap))
	}
	last := snap[len(snap)-1]
	if last.Value != "buy milk" {
		t.Errorf("Value: got %q, want %q", last.Value, "buy milk")
	}
	if last.Completed {
		t.Error("new task should not be completed")
	}
	if snap[0].Value != "first" {
		t.Errorf("insertion order lost: got %q first", snap[0].Value)
	}
}

func TestAddIgnoresBlankText(t *testing.T) {
	inputs := []string{"", " ", "\t", "\n", "  \t\n  ", " ", " \r\n"}
	for _, in := range inputs {
		t.Run(strings.ReplaceAll(in, "\n", `\n`), func(t *testing.T) {
			s := NewStore()
			s.Add("keep")
			before := s.Tasks()

			after := s.Add(in)

			if len(after) != len(before) {
				t.Fatalf("len: got %d, want %d", len(after), len(before))
			}
			if after[0] != before[0] {
				t.Errorf("task changed: got %+v, want %+v", after[0], before[0])
			}
		})
	}
}

func TestIDsAreNotReused(t *testing.T) {
	s := NewStore()
	a := s.Add("a")[0]
	s.Remove(a.ID)
	b := s.Add("b")[0]

	if b.ID == a.ID {
		t.Fatalf("id %s reused after removal", a.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("ids should increase: got %s after %s", b.ID, a.ID)
	}
}

func TestToggle(t *testing.T) {
	s := NewStore()
	s.Add("a")
	snap := s.Add("b")
	id := snap[1].ID

	snap = s.Toggle(id)
	if !snap[1].Completed {
		t.Error("toggle should complete task b")
	}
	if snap[0].Completed {
		t.Error("toggle should not touch task a")
	}

	snap = s.Toggle(id)
	if snap[1].Completed {
		t.Error("second toggle should restore task b")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.Add("a")
	before := s.Tasks()

	after := s.Toggle(999)
	if len(after) != 1 || after[0] != before[0] {
		t.Errorf("got %+v, want %+v", after, before)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add("a")
	s.Add("b")
	snap := s.Add("c")

	snap = s.Remove(snap[1].ID)
	if len(snap) != 2 {
		t.Fatalf("len: got %d, want 2", len(snap))
	}
	if snap[0].Value != "a" || snap[1].Value != "c" {
		t.Errorf("got %q,%q, want a,c", snap[0].Value, snap[1].Value)
	}

	snap = s.Remove(12345)
	if len(snap) != 2 {
		t.Errorf("removing unknown id changed len to %d", len(snap))
	}
}

func TestSetAllCompleted(t *testing.T) {
	s := NewStore()
	s.Add("a")
	snap := s.Add("b")
	s.Toggle(snap[0].ID)

	snap = s.SetAllCompleted(true)
	if !snap.AllCompleted() {
		t.Errorf("expected all completed, got %+v", snap)
	}

	snap = s.SetAllCompleted(false)
	if snap.ItemsLeft() != 2 {
		t.Errorf("ItemsLeft: got %d, want 2", snap.ItemsLeft())
	}
}

func TestAllCompletedPredicate(t *testing.T) {
	s := NewStore()
	if s.SetAllCompleted(true).AllCompleted() {
		t.Error("empty collection must not count as all completed")
	}
	s.Add("a")
	if !s.SetAllCompleted(true).AllCompleted() {
		t.Error("non-empty collection should be all completed")
	}
}

func TestClearCompleted(t *testing.T) {
	s := NewStore()
	s.Add("x")
	s.Add("y")

	snap := s.ClearCompleted()
	if len(snap) != 2 {
		t.Fatalf("nothing completed: got len %d, want 2", len(snap))
	}

	s.Toggle(snap[0].ID)
	s.Toggle(snap[1].ID)
	snap = s.ClearCompleted()
	if len(snap) != 0 {
		t.Fatalf("got len %d, want 0", len(snap))
	}
}

func TestClearCompletedIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Add("a")
	s.Add("b")
	snap := s.Add("c")
	s.Toggle(snap[1].ID)

	once := s.ClearCompleted()
	twice := s.ClearCompleted()

	if len(once) != len(twice) {
		t.Fatalf("len: once %d, twice %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("[%d]: once %+v, twice %+v", i, once[i], twice[i])
		}
	}
}

func TestDoubleToggleIsInvolution(t *testing.T) {
	s := NewStore()
	for _, v := range []string{"a", "b", "c"} {
		s.Add(v)
	}
	snap := s.Toggle(s.Tasks()[2].ID)
	before := snap

	for _, task := range before {
		s.Toggle(task.ID)
		after := s.Toggle(task.ID)
		for i := range before {
			if after[i] != before[i] {
				t.Errorf("toggle twice on %s: [%d] got %+v, want %+v", task.ID, i, after[i], before[i])
			}
		}
	}
}

func TestIDsUniqueAcrossRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewStore()

	for step := 0; step < 2000; step++ {
		snap := s.Tasks()
		var pick ID
		if len(snap) > 0 {
			pick = snap[rng.Intn(len(snap))].ID
		}
		switch rng.Intn(6) {
		case 0, 1:
			s.Add("task")
		case 2:
			s.Toggle(pick)
		case 3:
			s.Remove(pick)
		case 4:
			s.SetAllCompleted(rng.Intn(2) == 0)
		case 5:
			s.ClearCompleted()
		}

		seen := make(map[ID]bool)
		for _, task := range s.Tasks() {
			if seen[task.ID] {
				t.Fatalf("step %d: duplicate id %s", step, task.ID)
			}
			seen[task.ID] = true
		}
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	snap := s.Add("a")
	snap[0].Value = "mutated"
	snap[0].Completed = true

	got := s.Tasks()
	if got[0].Value != "a" || got[0].Completed {
		t.Errorf("store changed through snapshot: %+v", got[0])
	}
}

func TestSubscribeNotifiesEveryCall(t *testing.T) {
	s := NewStore()
	var received []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		received = append(received, snap)
	})

	s.Add("a")
	s.Add("   ")
	s.Toggle(s.Tasks()[0].ID)
	s.Remove(77)
	s.SetAllCompleted(false)
	s.ClearCompleted()

	if len(received) != 6 {
		t.Fatalf("notifications: got %d, want 6", len(received))
	}
	if !received[2][0].Completed {
		t.Error("toggle notification should carry post-mutation state")
	}

	unsubscribe()
	unsubscribe()
	s.Add("b")
	if len(received) != 6 {
		t.Errorf("notified after unsubscribe: %d", len(received))
	}
}

func TestObserverCanReadStore(t *testing.T) {
	s := NewStore()
	var seen int
	s.Subscribe(func(Snapshot) {
		seen = s.Len()
	})
	s.Add("a")
	if seen != 1 {
		t.Errorf("observer saw len %d, want 1", seen)
	}
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	s := NewStore()
	var order []string
	s.Subscribe(func(Snapshot) { order = append(order, "first") })
	s.Subscribe(func(Snapshot) { order = append(order, "second") })
	s.Add("a")

	if strings.Join(order, ",") != "first,second" {
		t.Errorf("order: got %v", order)
	}
}

func TestGetAndLen(t *testing.T) {
	s := NewStore()
	snap := s.Add("a")

	task, ok := s.Get(snap[0].ID)
	if !ok || task.Value != "a" {
		t.Errorf("Get: got %+v, %v", task, ok)
	}
	if _, ok := s.Get(snap[0].ID + 1); ok {
		t.Error("Get should miss unknown id")
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestWithLoggerTracesMutations(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := NewStore(WithLogger(logger))

	s.Add("a")
	s.ClearCompleted()

	out := buf.String()
	if !strings.Contains(out, "op=add") {
		t.Errorf("missing add trace in %q", out)
	}
	if !strings.Contains(out, "op=clear_completed") {
		t.Errorf("missing clear_completed trace in %q", out)
	}
}
