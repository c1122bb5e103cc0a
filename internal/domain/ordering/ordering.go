// Package ordering maintains the position invariants of an estimate's line
// items. Positions form two independent contiguous 1..N sequences, one over
// the priced rows (parts + labor) and one over upcoming rows.
//
// Every operation is a pure function: it takes the current full item array
// and returns a new one, leaving the input untouched. Callers compute a
// fully consistent next state here before handing the array to the store.
package ordering

import (
	"fmt"
	"sort"

	"atelier_auto/internal/domain/entities"
)

// Insert places newItem at desiredPosition within its partition. Existing
// items of the same partition at or after that position shift down by one.
//
// desiredPosition is assumed to be within [1, partitionCount+1]; the UI
// constrains the selectable range, the engine does not defend it.
func Insert(items []entities.LineItem, newItem entities.LineItem, desiredPosition int) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items)+1)
	for _, it := range items {
		if it.Partition() == newItem.Partition() && it.Position >= desiredPosition {
			it.Position++
		}
		out = append(out, it)
	}
	newItem.Position = desiredPosition
	out = append(out, newItem)
	return SortDisplay(out)
}

// Remove drops the item with itemID and closes the gap it leaves: every
// remaining item of the same partition after it moves up by one.
//
// Unknown ids are a no-op returning the input unchanged.
func Remove(items []entities.LineItem, itemID string) []entities.LineItem {
	removed, ok := find(items, itemID)
	if !ok {
		return items
	}
	out := make([]entities.LineItem, 0, len(items)-1)
	for _, it := range items {
		if it.ID == itemID {
			continue
		}
		if it.Partition() == removed.Partition() && it.Position > removed.Position {
			it.Position--
		}
		out = append(out, it)
	}
	return SortDisplay(out)
}

// Move reassigns the item's position within its own partition, shifting the
// rows it passes over. Moving up shifts [newPosition, oldPosition) down by
// one; moving down shifts (oldPosition, newPosition] up by one. Equal
// positions and unknown ids are no-ops.
//
// Move never crosses partitions. Changing a row's kind is remove + insert.
func Move(items []entities.LineItem, itemID string, newPosition int) []entities.LineItem {
	moved, ok := find(items, itemID)
	if !ok || moved.Position == newPosition {
		return items
	}
	oldPosition := moved.Position

	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		switch {
		case it.ID == itemID:
			it.Position = newPosition
		case it.Partition() != moved.Partition():
			// Other partition keeps its own sequence.
		case newPosition < oldPosition && it.Position >= newPosition && it.Position < oldPosition:
			it.Position++
		case newPosition > oldPosition && it.Position > oldPosition && it.Position <= newPosition:
			it.Position--
		}
		out = append(out, it)
	}
	return SortDisplay(out)
}

// SortDisplay returns the items in display order: parts, then labor, then
// upcoming work, each ascending by position. The document renderer and the
// editor must agree on exactly this order.
func SortDisplay(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].CategoryRank() != out[b].CategoryRank() {
			return out[a].CategoryRank() < out[b].CategoryRank()
		}
		return out[a].Position < out[b].Position
	})
	return out
}

// Validate asserts every partition's positions are exactly {1..N}. The
// engine above is the sole producer of valid arrays; a violation means a
// caller bug and must fail loudly, never be silently repaired.
func Validate(items []entities.LineItem) error {
	seen := map[entities.ItemPartition]map[int]bool{
		entities.PartitionPriced:   {},
		entities.PartitionUpcoming: {},
	}
	for _, it := range items {
		p := seen[it.Partition()]
		if it.Position < 1 {
			return fmt.Errorf("item %s: position %d out of range", it.ID, it.Position)
		}
		if p[it.Position] {
			return fmt.Errorf("item %s: duplicate position %d in %s partition", it.ID, it.Position, it.Partition())
		}
		p[it.Position] = true
	}
	for partition, positions := range seen {
		for n := 1; n <= len(positions); n++ {
			if !positions[n] {
				return fmt.Errorf("%s partition: missing position %d", partition, n)
			}
		}
	}
	return nil
}

func find(items []entities.LineItem, itemID string) (entities.LineItem, bool) {
	for _, it := range items {
		if it.ID == itemID {
			return it, true
		}
	}
	return entities.LineItem{}, false
}
