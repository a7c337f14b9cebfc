package main

import (
	"reflect"
	"testing"
)

func TestTaskCmd_HasSubcommands(t *testing.T) {
	expected := []string{"list", "show <id>", "create <title>", "edit <id>",
		"delete <id>", "done <id>", "undone <id>", "bulk <field> <value> <id>..."}

	var got []string
	for _, sub := range taskCmd.Commands() {
		got = append(got, sub.Use)
	}

	for _, want := range expected {
		found := false
		for _, use := range got {
			if use == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("task command should have subcommand %q, got %v", want, got)
		}
	}
}

func TestTaskListCmd_HasQueryFlags(t *testing.T) {
	for _, name := range []string{"project", "page", "per-page", "search", "sort", "order", "filter", "filter-include-nulls"} {
		if taskListCmd.Flags().Lookup(name) == nil {
			t.Errorf("task list should have --%s flag", name)
		}
	}
}

func TestTaskCreateCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"project", "description", "priority"} {
		if taskCreateCmd.Flags().Lookup(name) == nil {
			t.Errorf("task create should have --%s flag", name)
		}
	}
}

func TestParseBulkValue(t *testing.T) {
	tests := []struct {
		arg  string
		want interface{}
	}{
		{"true", true},
		{"false", false},
		{"TRUE", true},
		{"4", int64(4)},
		{"urgent", "urgent"},
		{"-1", "-1"},
	}

	for _, tt := range tests {
		if got := parseBulkValue(tt.arg); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseBulkValue(%q) = %#v, expected %#v", tt.arg, got, tt.want)
		}
	}
}

func TestListOptionsFromFlags_OnlyChangedFlags(t *testing.T) {
	cmd := taskListCmd
	cmd.Flags().Set("page", "3")
	cmd.Flags().Set("filter", "done = false")
	defer func() {
		cmd.Flags().Lookup("page").Changed = false
		cmd.Flags().Lookup("filter").Changed = false
	}()

	opts := listOptionsFromFlags(cmd)
	if len(opts) != 2 {
		t.Errorf("expected 2 options for 2 changed flags, got %d", len(opts))
	}
}
