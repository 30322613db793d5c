package format

import (
	"testing"
	"time"
)

func TestDateTime(t *testing.T) {
	if got := DateTime(nil); got != "" {
		t.Fatalf("DateTime(nil) = %q, want empty", got)
	}

	at := time.Date(2025, time.March, 7, 9, 5, 33, 0, time.Local)
	if got := DateTime(&at); got != "09:05 07.03" {
		t.Fatalf("DateTime() = %q, want %q", got, "09:05 07.03")
	}

	evening := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.Local)
	if got := DateTime(&evening); got != "23:59 31.12" {
		t.Fatalf("DateTime() = %q, want %q", got, "23:59 31.12")
	}
}

func TestDueEditValue(t *testing.T) {
	if got := DueEditValue(nil); got != "" {
		t.Fatalf("DueEditValue(nil) = %q, want empty", got)
	}
	at := time.Date(2025, time.June, 2, 18, 30, 59, 123, time.Local)
	if got := DueEditValue(&at); got != "2025-06-02T18:30" {
		t.Fatalf("DueEditValue() = %q, want minute precision", got)
	}
}

func TestParseDueEdit(t *testing.T) {
	if got, err := ParseDueEdit("   "); err != nil || got != nil {
		t.Fatalf("ParseDueEdit(blank) = %v, %v; want nil, nil", got, err)
	}

	got, err := ParseDueEdit("2025-06-02T18:30")
	if err != nil {
		t.Fatalf("ParseDueEdit() error = %v", err)
	}
	want := time.Date(2025, time.June, 2, 18, 30, 0, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Fatalf("ParseDueEdit() = %v, want %v", got, want)
	}

	if _, err := ParseDueEdit("tomorrow"); err == nil {
		t.Fatal("ParseDueEdit(invalid) expected error")
	}
}

func TestDueEditRoundTrip(t *testing.T) {
	at := time.Date(2025, time.June, 2, 18, 30, 45, 0, time.Local)
	parsed, err := ParseDueEdit(DueEditValue(&at))
	if err != nil {
		t.Fatalf("round trip error = %v", err)
	}
	if parsed == nil || parsed.Truncate(time.Minute).Equal(at.Truncate(time.Minute)) == false {
		t.Fatalf("round trip = %v, want %v at minute precision", parsed, at)
	}
}
