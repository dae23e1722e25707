package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestSequenceIsDeterministic(t *testing.T) {
	next := Sequence("t")
	for _, want := range []string{"t-1", "t-2", "t-3"} {
		if got := next(); string(got) != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestUUIDProducesDistinctParseableIDs(t *testing.T) {
	next := UUID()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := string(next())
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected a valid uuid, got %q: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "uuid", "UUID", "seq", "sequence"} {
		if _, err := ByName(name); err != nil {
			t.Fatalf("expected %q to be accepted: %v", name, err)
		}
	}
	if _, err := ByName("snowflake"); err == nil {
		t.Fatalf("expected unknown strategy to be rejected")
	}
}
