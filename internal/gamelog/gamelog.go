// Package gamelog is the player-facing message log.
package gamelog

import "fmt"

// MaxEntries bounds the log; older messages are dropped.
const MaxEntries = 50

type Log struct {
	entries []string
}

func New() *Log { return &Log{} }

// Add appends a message.
func (l *Log) Add(msg string) {
	l.entries = append(l.entries, msg)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[len(l.entries)-MaxEntries:]
	}
}

// Addf appends a formatted message.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns every retained message, oldest first.
func (l *Log) Entries() []string { return l.entries }

// Last returns up to n of the newest messages, oldest first.
func (l *Log) Last(n int) []string {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

// Clear drops every message.
func (l *Log) Clear() { l.entries = nil }
