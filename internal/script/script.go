package script

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/todos-go/internal/logging"
	"github.com/nibzard/todos-go/internal/todo"
	"github.com/nibzard/todos-go/internal/ui"
)

// Op names an event kind.
type Op string

const (
	OpType           Op = "type"
	OpEnter          Op = "enter"
	OpAdd            Op = "add"
	OpToggle         Op = "toggle"
	OpRemove         Op = "remove"
	OpToggleAll      Op = "toggle_all"
	OpSetAll         Op = "set_all"
	OpFilter         Op = "filter"
	OpClearCompleted Op = "clear_completed"
	OpRender         Op = "render"
)

// Event is one parsed script line.
type Event struct {
	Op        Op     `json:"op"`
	Text      string `json:"text,omitempty"`
	Row       int    `json:"row,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	Filter    string `json:"filter,omitempty"`

	// Line is the 1-based source line.
	Line int `json:"-"`
}

// ErrRowOutOfRange is returned when a toggle or remove names a row that is
// not in the current visible view.
var ErrRowOutOfRange = errors.New("row out of range")

// LineError reports the script line an error came from.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// SchemaError is a schema violation for a single event.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://todos.local/schema/event.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func eventSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Parse reads and validates every event in r without applying any.
func Parse(r io.Reader) ([]Event, error) {
	schema, err := eventSchema()
	if err != nil {
		return nil, err
	}

	var events []Event
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := parseLine(schema, text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		ev.Line = line
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return events, nil
}

func parseLine(schema *jsonschema.Schema, text string) (Event, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return Event{}, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return Event{}, errors.New("invalid json: trailing data")
	}
	if err := schema.Validate(doc); err != nil {
		return Event{}, schemaError(err)
	}

	var ev Event
	if err := json.Unmarshal([]byte(text), &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}

// schemaError reduces a validation error tree to its first leaf.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &SchemaError{Path: pointerToPath(ve.InstanceLocation), Message: ve.Message}
}

// pointerToPath turns "/row" into "row".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	return strings.ReplaceAll(ptr, "/", ".")
}

// Result summarizes a replay.
type Result struct {
	Events  int
	Renders int
	Tasks   todo.Snapshot
}

// Option configures a replay.
type Option func(*runner)

// WithTitle sets the title shown in renderings.
func WithTitle(title string) Option {
	return func(r *runner) { r.render.Title = title }
}

// WithPlaceholder sets the entry placeholder shown in renderings.
func WithPlaceholder(placeholder string) Option {
	return func(r *runner) { r.render.Placeholder = placeholder }
}

// WithLogger sets the logger for applied events.
func WithLogger(logger *log.Logger) Option {
	return func(r *runner) { r.logger = logger }
}

type runner struct {
	ctrl   *ui.Controller
	out    io.Writer
	render ui.RenderState
	logger *log.Logger
	result Result
}

// Run parses the script in r and applies it to ctrl, writing renderings to
// w. It stops at the first failing event. When the script has no render
// event, the final state is rendered once at the end.
func Run(ctx context.Context, r io.Reader, w io.Writer, ctrl *ui.Controller, opts ...Option) (Result, error) {
	run := &runner{
		ctrl:   ctrl,
		out:    w,
		render: ui.RenderState{Cursor: -1},
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(run)
	}

	events, err := Parse(r)
	if err != nil {
		return run.finish(), err
	}

	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return run.finish(), err
		}
		if err := run.apply(ev); err != nil {
			return run.finish(), &LineError{Line: ev.Line, Err: err}
		}
		run.result.Events++
		run.logger.Debug("script event", "line", ev.Line, "op", ev.Op)
	}

	if run.result.Renders == 0 {
		if err := run.write(); err != nil {
			return run.finish(), err
		}
	}
	return run.finish(), nil
}

func (r *runner) finish() Result {
	r.result.Tasks = r.ctrl.Tasks()
	return r.result
}

func (r *runner) apply(ev Event) error {
	switch ev.Op {
	case OpType:
		r.ctrl.SetInput(ev.Text)
	case OpEnter:
		r.ctrl.Commit()
	case OpAdd:
		r.ctrl.SetInput(ev.Text)
		r.ctrl.Commit()
	case OpToggle:
		t, err := r.row(ev.Row)
		if err != nil {
			return err
		}
		r.ctrl.Toggle(t.ID)
	case OpRemove:
		t, err := r.row(ev.Row)
		if err != nil {
			return err
		}
		r.ctrl.Remove(t.ID)
	case OpToggleAll:
		r.ctrl.ToggleAll()
	case OpSetAll:
		r.ctrl.SetAllCompleted(ev.Completed)
	case OpFilter:
		f, err := todo.ParseFilter(ev.Filter)
		if err != nil {
			return err
		}
		r.ctrl.SetFilter(f)
	case OpClearCompleted:
		r.ctrl.ClearCompleted()
	case OpRender:
		return r.write()
	default:
		return fmt.Errorf("unknown op %q", ev.Op)
	}
	return nil
}

func (r *runner) row(n int) (todo.Task, error) {
	visible := r.ctrl.Visible()
	if n < 1 || n > len(visible) {
		return todo.Task{}, fmt.Errorf("%w: %d (%d visible)", ErrRowOutOfRange, n, len(visible))
	}
	return visible[n-1], nil
}

func (r *runner) write() error {
	if r.result.Renders > 0 {
		if _, err := io.WriteString(r.out, "\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(r.out, ui.Render(r.ctrl, ui.PlainStyles(), r.render)); err != nil {
		return fmt.Errorf("write render: %w", err)
	}
	r.result.Renders++
	return nil
}
