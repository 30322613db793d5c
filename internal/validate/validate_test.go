package validate

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	cases := []struct {
		name      string
		value     string
		wantValid bool
		wantError string
	}{
		{name: "plain", value: "Buy milk", wantValid: true},
		{name: "empty", value: "", wantError: "Title is required"},
		{name: "whitespace only", value: " \t\n  ", wantError: "Title is required"},
		{name: "exactly at limit", value: strings.Repeat("a", TitleMaxLength), wantValid: true},
		{name: "limit after trim", value: "  " + strings.Repeat("a", TitleMaxLength) + "  ", wantValid: true},
		{name: "over limit", value: strings.Repeat("a", TitleMaxLength+1), wantError: "Title must be at most 200 characters"},
		{name: "non-ascii counted in runes", value: strings.Repeat("ё", TitleMaxLength), wantValid: true},
		{name: "non-ascii over limit", value: strings.Repeat("ё", TitleMaxLength+1), wantError: "Title must be at most 200 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Title(tc.value)
			if got.Valid != tc.wantValid {
				t.Fatalf("Title(%q).Valid = %t, want %t", tc.value, got.Valid, tc.wantValid)
			}
			if !tc.wantValid && got.Error != tc.wantError {
				t.Fatalf("Title(%q).Error = %q, want %q", tc.value, got.Error, tc.wantError)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if r := Description(""); r.Valid || r.Error != "Description is required" {
		t.Fatalf("Description(\"\") = %+v", r)
	}
	if r := Description(strings.Repeat("b", DescriptionMaxLength)); !r.Valid {
		t.Fatalf("Description at limit rejected: %+v", r)
	}
	if r := Description(strings.Repeat("b", DescriptionMaxLength+1)); r.Valid || r.Error != "Description must be at most 4000 characters" {
		t.Fatalf("Description over limit = %+v", r)
	}
}

func TestTaskForm(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{name: "both valid", title: "t", description: "d", want: ""},
		{name: "title error wins", title: "", description: "", want: "Title is required"},
		{name: "title error wins over valid description", title: "", description: "d", want: "Title is required"},
		{name: "description checked after title", title: "t", description: "", want: "Description is required"},
		{name: "long title reported before empty description", title: strings.Repeat("a", 201), description: "", want: "Title must be at most 200 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TaskForm(tc.title, tc.description); got != tc.want {
				t.Fatalf("TaskForm(%q, %q) = %q, want %q", tc.title, tc.description, got, tc.want)
			}
		})
	}
}
