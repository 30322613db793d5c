// Package validate holds the pure field constraints for task content.
// Limits match the service API contract.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TitleMaxLength and DescriptionMaxLength bound trimmed field lengths in runes
// so the validated count matches the character count shown to the user.
const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 4000
)

// Result reports one field validation outcome.
type Result struct {
	Valid bool
	Error string
}

// Title validates a task title: required after trim, at most TitleMaxLength runes.
func Title(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{Error: "Title is required"}
	}
	if utf8.RuneCountInString(trimmed) > TitleMaxLength {
		return Result{Error: fmt.Sprintf("Title must be at most %d characters", TitleMaxLength)}
	}
	return Result{Valid: true}
}

// Description validates a task description: required after trim, at most
// DescriptionMaxLength runes.
func Description(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{Error: "Description is required"}
	}
	if utf8.RuneCountInString(trimmed) > DescriptionMaxLength {
		return Result{Error: fmt.Sprintf("Description must be at most %d characters", DescriptionMaxLength)}
	}
	return Result{Valid: true}
}

// TaskForm validates a full form and returns the single message to show, or ""
// when the form is valid. The title is checked first; the description only
// when the title passes.
func TaskForm(title, description string) string {
	if r := Title(title); !r.Valid {
		return r.Error
	}
	if r := Description(description); !r.Valid {
		return r.Error
	}
	return ""
}
