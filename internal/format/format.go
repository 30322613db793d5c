// Package format converts task timestamps between display, edit, and wire
// representations.
package format

import (
	"fmt"
	"strings"
	"time"
)

// dueEditLayout is the minute-precision form due dates take while being
// edited. Baseline/draft comparison happens on this representation.
const dueEditLayout = "2006-01-02T15:04"

// DateTime renders a timestamp for list and detail rows as "HH:MM DD.MM" in
// local time. A nil timestamp renders as the empty string.
func DateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("15:04 02.01")
}

// DueEditValue truncates a due date to the minute-precision local edit form.
// Nil becomes the empty string.
func DueEditValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(dueEditLayout)
}

// ParseDueEdit re-expands an edit-form due value for submission. The empty
// string normalizes to nil (no due date).
func ParseDueEdit(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dueEditLayout, trimmed, time.Local)
	if err != nil {
		return nil, fmt.Errorf("due date must look like 2006-01-02T15:04")
	}
	return &t, nil
}
