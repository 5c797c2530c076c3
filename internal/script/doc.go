// Package script replays JSONL event scripts against a todo view controller
// without a terminal.
//
// Each non-blank line is one JSON object with an "op" field. Lines starting
// with '#' are comments. Events are checked against an embedded JSON Schema
// before they are applied, so a malformed script fails at the offending line
// with nothing half-applied from that line.
package script
