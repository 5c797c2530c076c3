package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todos-go/internal/todo"
)

// RenderState carries the view-local details Render cannot get from the
// controller.
type RenderState struct {
	Title string
	// Entry is the already rendered entry line. When empty, the buffer is
	// shown, or Placeholder if the buffer is empty too.
	Entry       string
	Placeholder string
	// Cursor is the highlighted visible row, or -1 for none.
	Cursor int
	Help   []key.Binding
}

// Render draws the widget: title, entry line with the toggle-all
// checkbox, visible rows, and the footer when the collection is non-empty.
func Render(c *Controller, st Styles, rs RenderState) string {
	var b strings.Builder
	writeTitle(&b, st, rs.Title)
	writeEntry(&b, c, st, rs)
	writeRows(&b, c, st, rs.Cursor)
	if c.ShowFooter() {
		writeFooter(&b, c, st)
	}
	if len(rs.Help) > 0 {
		writeHelp(&b, st, rs.Help)
	}
	return b.String()
}

func writeTitle(b *strings.Builder, st Styles, title string) {
	if title == "" {
		title = "todos"
	}
	b.WriteString(st.Title.Render(title) + "\n\n")
}

func writeEntry(b *strings.Builder, c *Controller, st Styles, rs RenderState) {
	entry := rs.Entry
	if entry == "" {
		if c.Input() != "" {
			entry = c.Input()
		} else {
			entry = st.Placeholder.Render(rs.Placeholder)
		}
	}
	b.WriteString(st.Checkbox.Render(checkbox(c.MasterChecked())) + " " + entry + "\n\n")
}

func writeRows(b *strings.Builder, c *Controller, st Styles, cursor int) {
	visible := c.Visible()
	for i, t := range visible {
		b.WriteString(formatRow(t, st, i == cursor))
		b.WriteString("\n")
	}
	if len(visible) > 0 {
		b.WriteString("\n")
	}
}

func formatRow(t todo.Task, st Styles, selected bool) string {
	marker := " "
	if selected {
		marker = st.Cursor.Render(">")
	}
	value := st.Task.Render(t.Value)
	if t.Completed {
		value = st.Done.Render(t.Value)
	}
	return marker + " " + st.Checkbox.Render(checkbox(t.Completed)) + " " + value + "  " + st.Remove.Render("x")
}

func writeFooter(b *strings.Builder, c *Controller, st Styles) {
	parts := []string{st.Count.Render(c.FooterCount())}
	for _, f := range todo.Filters() {
		if f == c.Filter() {
			parts = append(parts, st.FilterOn.Render("["+f.Label()+"]"))
		} else {
			parts = append(parts, st.FilterOff.Render(" "+f.Label()+" "))
		}
	}
	parts = append(parts, st.Clear.Render("Clear Completed"))
	b.WriteString(strings.Join(parts, "  ") + "\n")
}

func writeHelp(b *strings.Builder, st Styles, bindings []key.Binding) {
	b.WriteString("\n")
	for _, kb := range bindings {
		h := kb.Help()
		b.WriteString(st.Help.Render("  "+padRight(h.Key, 10)+" "+h.Desc) + "\n")
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
