package tui

import (
	"testing"
)

// TestKeyMapDefaults verifies the default list bindings.
func TestKeyMapDefaults(t *testing.T) {
	k := newKeyMap()

	assertKeys := func(name string, got []string, expected ...string) {
		t.Helper()
		if len(got) != len(expected) {
			t.Fatalf("%s key count mismatch got=%#v expected=%#v", name, got, expected)
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Fatalf("%s key mismatch got=%#v expected=%#v", name, got, expected)
			}
		}
	}

	assertKeys("quit", k.quit.Keys(), "q", "ctrl+c")
	assertKeys("reload", k.reload.Keys(), "r")
	assertKeys("prev page", k.prevPage.Keys(), "h", "left")
	assertKeys("next page", k.nextPage.Keys(), "l", "right")
	assertKeys("open task", k.openTask.Keys(), "enter")
	assertKeys("new task", k.newTask.Keys(), "n")
	assertKeys("copy title", k.copyTitle.Keys(), "y")
}

// TestKeyMapHelpCoverage verifies that paging keys surface in the short help.
func TestKeyMapHelpCoverage(t *testing.T) {
	k := newKeyMap()
	short := k.ShortHelp()
	if len(short) == 0 {
		t.Fatal("expected short help bindings")
	}
	found := false
	for _, b := range short {
		if b.Help().Desc == "next page" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected next page in short help, got %#v", short)
	}

	full := k.FullHelp()
	if len(full) != 2 {
		t.Fatalf("expected two full-help rows, got %d", len(full))
	}
}
