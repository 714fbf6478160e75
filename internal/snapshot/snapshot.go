// Package snapshot computes the target (sections, ordered items)
// structure for a presented list. Applying the structure against the
// previous one is the presentation layer's job; this package only
// decides which sections survive, in what order, and which items need
// a presentation refresh.
package snapshot

import "fmt"

// Section is one ordered section of a snapshot.
type Section[S comparable, I comparable] struct {
	ID    S
	Items []I
}

// Snapshot is the desired list structure at a point in time.
type Snapshot[S comparable, I comparable] struct {
	Sections []Section[S, I]

	// Reload holds every item in the snapshot. Item identifiers are
	// bound to stable keys (habit names, user ids), so content changes
	// such as a new count do not change identity; marking all items
	// forces the presentation refresh anyway.
	Reload map[I]bool
}

// Items returns the snapshot's item identifiers in display order.
func (s Snapshot[S, I]) Items() []I {
	var items []I
	for _, sec := range s.Sections {
		items = append(items, sec.Items...)
	}
	return items
}

// Build assembles a snapshot from an ordered section list and a
// section-to-items mapping. Sections missing from the mapping, or
// mapped to an empty list and not in retained, are dropped.
//
// Item identifiers must be unique across the whole snapshot, not just
// per section; a duplicate is a caller bug and panics.
func Build[S comparable, I comparable](sectionIDs []S, itemsBySection map[S][]I, retained map[S]bool) Snapshot[S, I] {
	snap := Snapshot[S, I]{Reload: make(map[I]bool)}

	for _, sectionID := range sectionIDs {
		items, ok := itemsBySection[sectionID]
		if !ok || (len(items) == 0 && !retained[sectionID]) {
			continue
		}

		sec := Section[S, I]{ID: sectionID, Items: append([]I(nil), items...)}
		for _, item := range items {
			if snap.Reload[item] {
				panic(fmt.Sprintf("snapshot: duplicate item identifier %v", item))
			}
			snap.Reload[item] = true
		}
		snap.Sections = append(snap.Sections, sec)
	}

	return snap
}
