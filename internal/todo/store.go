package todo

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Observer receives the collection after every store operation.
type Observer func(Snapshot)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation tracing.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type subscription struct {
	id int
	fn Observer
}

// Store holds the ordered task collection.
type Store struct {
	mu        sync.Mutex
	tasks     Snapshot
	nextID    ID
	observers []subscription
	nextSub   int
	logger    *log.Logger
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		tasks:  Snapshot{},
		nextID: 1,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called with the new Snapshot after every
// operation. Observers run synchronously, in registration order, after the
// store lock is released. The returned func removes the registration.
func (s *Store) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Tasks returns the current collection.
func (s *Store) Tasks() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.clone()
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Get returns the task with the given ID.
func (s *Store) Get(id ID) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Find(id)
}

// Add appends a task built from text. Leading and trailing whitespace is
// removed; if nothing is left the collection is unchanged.
func (s *Store) Add(text string) Snapshot {
	value := strings.TrimSpace(text)
	return s.mutate("add", func() ID {
		if value == "" {
			return 0
		}
		id := s.nextID
		s.nextID++
		s.tasks = append(s.tasks, Task{ID: id, Value: value})
		return id
	})
}

// Toggle flips the completion flag of the task with the given ID.
func (s *Store) Toggle(id ID) Snapshot {
	return s.mutate("toggle", func() ID {
		i := s.tasks.Index(id)
		if i < 0 {
			return 0
		}
		t := s.tasks[i]
		t.Completed = !t.Completed
		s.tasks[i] = t
		return id
	})
}

// Remove deletes the task with the given ID.
func (s *Store) Remove(id ID) Snapshot {
	return s.mutate("remove", func() ID {
		i := s.tasks.Index(id)
		if i < 0 {
			return 0
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		return id
	})
}

// SetAllCompleted sets every task's completion flag to completed.
func (s *Store) SetAllCompleted(completed bool) Snapshot {
	return s.mutate("set_all_completed", func() ID {
		for i := range s.tasks {
			s.tasks[i].Completed = completed
		}
		return 0
	})
}

// ClearCompleted deletes every completed task.
func (s *Store) ClearCompleted() Snapshot {
	return s.mutate("clear_completed", func() ID {
		kept := s.tasks[:0]
		for _, t := range s.tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		s.tasks = kept
		return 0
	})
}

// mutate applies fn under the lock, then notifies observers with the
// resulting snapshot.
func (s *Store) mutate(op string, fn func() ID) Snapshot {
	s.mu.Lock()
	id := fn()
	snap := s.tasks.clone()
	observers := make([]Observer, len(s.observers))
	for i, sub := range s.observers {
		observers[i] = sub.fn
	}
	s.mu.Unlock()

	if id != 0 {
		s.logger.Debug("store mutation", "op", op, "id", id, "count", len(snap))
	} else {
		s.logger.Debug("store mutation", "op", op, "count", len(snap))
	}

	for _, fn := range observers {
		fn(snap.clone())
	}
	return snap
}
