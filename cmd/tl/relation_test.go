package main

import (
	"testing"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

func TestParseRelationKind_Valid(t *testing.T) {
	kinds := []string{"subtask", "parenttask", "related", "blocking",
		"blocked", "precedes", "follows", "duplicates"}

	for _, arg := range kinds {
		kind, err := parseRelationKind(arg)
		if err != nil {
			t.Errorf("parseRelationKind(%q) unexpected error: %v", arg, err)
			continue
		}
		if kind != tasklight.RelationKind(arg) {
			t.Errorf("parseRelationKind(%q) = %q", arg, kind)
		}
	}
}

func TestParseRelationKind_Invalid(t *testing.T) {
	for _, arg := range []string{"", "child", "SUBTASK", "blocks"} {
		if _, err := parseRelationKind(arg); err == nil {
			t.Errorf("parseRelationKind(%q) should fail", arg)
		}
	}
}

func TestParseRelationArgs(t *testing.T) {
	taskID, kind, otherID, err := parseRelationArgs([]string{"3", "blocking", "9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taskID != 3 || kind != tasklight.RelationBlocking || otherID != 9 {
		t.Errorf("parseRelationArgs = (%d, %s, %d)", taskID, kind, otherID)
	}

	if _, _, _, err := parseRelationArgs([]string{"3", "nope", "9"}); err == nil {
		t.Error("invalid kind should fail")
	}
	if _, _, _, err := parseRelationArgs([]string{"x", "blocking", "9"}); err == nil {
		t.Error("invalid task ID should fail")
	}
}
