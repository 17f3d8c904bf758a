// Package resource maps persisted entities to their public JSON shapes.
// Relation fields are emitted only when the caller explicitly loaded them;
// an unloaded relation is absent from the output, not null.
package resource

import "time"

// TimeFormat is the fixed serialization format for all timestamps.
const TimeFormat = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// formatTimePtr returns nil for zero or missing timestamps so they can be
// omitted from output, e.g. on identity-projected users.
func formatTimePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := formatTime(*t)
	return &s
}
