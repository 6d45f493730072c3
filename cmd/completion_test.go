package cmd

import (
	"testing"

	"github.com/posener/complete/v2/predict"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	for _, name := range []string{"add", "list", "summary", "update", "delete", "query", "export", "fmt", "help"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() has no %q command", name)
		}
	}
	for _, name := range []string{"ledger-file", "currency", "opening", "v"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("Completion() has no global flag %q", name)
		}
	}

	add := c.Sub["add"]
	for _, name := range []string{"desc", "amt", "kind"} {
		if _, ok := add.Flags[name]; !ok {
			t.Errorf("add completion has no flag %q", name)
		}
	}
	kinds, ok := add.Flags["kind"].(predict.Set)
	if !ok || len(kinds) != 2 {
		t.Errorf("add -kind predicts %v, want C and D", add.Flags["kind"])
	}
	if got := c.Sub["summary"].Flags["chart"].Predict(""); len(got) != 0 {
		t.Errorf("boolean flag predicts %v, want nothing", got)
	}
}

func TestIsCommand(t *testing.T) {
	for name, want := range map[string]bool{"add": true, "help": true, "fmt": true, "hello": false, "": false} {
		if got := IsCommand(name); got != want {
			t.Errorf("IsCommand(%q) = %v, want %v", name, got, want)
		}
	}
}
