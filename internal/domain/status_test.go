package domain

import (
	"reflect"
	"testing"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{raw: "NEW", want: StatusNew},
		{raw: "in_progress", want: StatusInProgress},
		{raw: "  completed  ", want: StatusCompleted},
		{raw: "DONE", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) expected error, got %q", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestTransitionAllowed(t *testing.T) {
	allowed := [][2]Status{
		{StatusNew, StatusNew},
		{StatusNew, StatusInProgress},
		{StatusInProgress, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusCompleted, StatusCompleted},
	}
	for _, pair := range allowed {
		if !TransitionAllowed(pair[0], pair[1]) {
			t.Errorf("TransitionAllowed(%s, %s) = false, want true", pair[0], pair[1])
		}
	}

	forbidden := [][2]Status{
		{StatusNew, StatusCompleted},
		{StatusInProgress, StatusNew},
		{StatusCompleted, StatusNew},
		{StatusCompleted, StatusInProgress},
	}
	for _, pair := range forbidden {
		if TransitionAllowed(pair[0], pair[1]) {
			t.Errorf("TransitionAllowed(%s, %s) = true, want false", pair[0], pair[1])
		}
	}
}

func TestStatusOptions(t *testing.T) {
	cases := []struct {
		current Status
		want    []Status
	}{
		{StatusNew, []Status{StatusNew, StatusInProgress}},
		{StatusInProgress, []Status{StatusInProgress, StatusCompleted}},
		{StatusCompleted, []Status{StatusCompleted}},
	}
	for _, tc := range cases {
		if got := StatusOptions(tc.current); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("StatusOptions(%s) = %v, want %v", tc.current, got, tc.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusInProgress.Label(); got != "In progress" {
		t.Errorf("Label() = %q, want %q", got, "In progress")
	}
	if got := Status("ODD").Label(); got != "ODD" {
		t.Errorf("Label() fallback = %q, want raw value", got)
	}
}
