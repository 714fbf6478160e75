package snapshot

import (
	"reflect"
	"testing"
)

func TestBuildDropsEmptySections(t *testing.T) {
	snap := Build(
		[]string{"A", "B"},
		map[string][]string{"A": {"x", "y"}, "B": {}},
		nil,
	)

	if len(snap.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(snap.Sections))
	}
	if snap.Sections[0].ID != "A" {
		t.Errorf("section = %q, want A", snap.Sections[0].ID)
	}
	if !reflect.DeepEqual(snap.Sections[0].Items, []string{"x", "y"}) {
		t.Errorf("items = %v, want [x y]", snap.Sections[0].Items)
	}

	for _, item := range []string{"x", "y"} {
		if !snap.Reload[item] {
			t.Errorf("item %q not marked for reload", item)
		}
	}
}

func TestBuildRetainsEmptySection(t *testing.T) {
	snap := Build(
		[]string{"A", "B"},
		map[string][]string{"A": {"x", "y"}, "B": {}},
		map[string]bool{"B": true},
	)

	if len(snap.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(snap.Sections))
	}
	if snap.Sections[1].ID != "B" {
		t.Errorf("second section = %q, want B", snap.Sections[1].ID)
	}
	if len(snap.Sections[1].Items) != 0 {
		t.Errorf("retained section B should be empty, got %v", snap.Sections[1].Items)
	}
}

func TestBuildSkipsUnmappedSections(t *testing.T) {
	// C appears in the order but not in the mapping; retention does
	// not resurrect it.
	snap := Build(
		[]string{"A", "C"},
		map[string][]string{"A": {"x"}},
		map[string]bool{"C": true},
	)

	if len(snap.Sections) != 1 || snap.Sections[0].ID != "A" {
		t.Errorf("sections = %v, want only A", snap.Sections)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	snap := Build(
		[]string{"B", "A"},
		map[string][]string{"A": {"a1"}, "B": {"b2", "b1"}},
		nil,
	)

	if got := snap.Items(); !reflect.DeepEqual(got, []string{"b2", "b1", "a1"}) {
		t.Errorf("items = %v, want [b2 b1 a1]", got)
	}
}

func TestBuildPanicsOnDuplicateItemAcrossSections(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate item identifier")
		}
	}()

	Build(
		[]string{"A", "B"},
		map[string][]string{"A": {"x"}, "B": {"x"}},
		nil,
	)
}

func TestBuildCopiesItemSlices(t *testing.T) {
	items := []string{"x", "y"}
	snap := Build([]string{"A"}, map[string][]string{"A": items}, nil)

	items[0] = "mutated"
	if snap.Sections[0].Items[0] != "x" {
		t.Error("snapshot aliases the caller's slice")
	}
}
