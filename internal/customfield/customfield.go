// Package customfield manages the reorderable option lists of a project
// (statuses, labels, priorities, sizes) with deferred, diff-based persistence.
package customfield

import (
	"errors"

	"github.com/google/uuid"

	"taskboard-api/internal/position"
)

// ErrItemNotFound is returned when an edit or removal targets an unknown id
var ErrItemNotFound = errors.New("option not found")

// Item is one option of a custom field list
type Item struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	Limit       int       `json:"limit"`
}

// Diff is the set of writes that turns an original list into the current one.
// The three sets are disjoint.
type Diff struct {
	ItemsToAdd    []Item
	ItemsToDelete []Item
	ItemsToUpdate []Item
}

// Empty reports whether the diff contains no writes
func (d Diff) Empty() bool {
	return len(d.ItemsToAdd) == 0 && len(d.ItemsToDelete) == 0 && len(d.ItemsToUpdate) == 0
}

// CompareAndUpdateItems matches items by id. Ids only in current are adds, ids only in original
// are deletes, and ids in both with any differing field (order included) are updates.
// Items without an id are always adds.
func CompareAndUpdateItems(original, current []Item) Diff {
	before := make(map[uuid.UUID]Item, len(original))
	for _, item := range original {
		before[item.ID] = item
	}

	diff := Diff{
		ItemsToAdd:    []Item{},
		ItemsToDelete: []Item{},
		ItemsToUpdate: []Item{},
	}
	seen := make(map[uuid.UUID]bool, len(current))
	for _, item := range current {
		if item.ID == uuid.Nil {
			diff.ItemsToAdd = append(diff.ItemsToAdd, item)
			continue
		}
		seen[item.ID] = true
		old, ok := before[item.ID]
		switch {
		case !ok:
			diff.ItemsToAdd = append(diff.ItemsToAdd, item)
		case old != item:
			diff.ItemsToUpdate = append(diff.ItemsToUpdate, item)
		}
	}
	for _, item := range original {
		if !seen[item.ID] {
			diff.ItemsToDelete = append(diff.ItemsToDelete, item)
		}
	}
	return diff
}

// HasChanges reports whether current differs from original in any item
func HasChanges(original, current []Item) bool {
	return !CompareAndUpdateItems(original, current).Empty()
}

// List is a controlled option list. Edits stay local until the caller persists Changes().
type List struct {
	original []Item
	items    []Item
}

// NewList starts a list from the persisted items
func NewList(original []Item) *List {
	return &List{
		original: append([]Item(nil), original...),
		items:    append([]Item(nil), original...),
	}
}

// Items returns a copy of the current items
func (l *List) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Add appends an item at the end of the list
func (l *List) Add(item Item) Item {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.Order = len(l.items)
	l.items = append(l.Items(), item)
	return item
}

// Edit replaces the fields of the item with the same id, keeping its order
func (l *List) Edit(item Item) error {
	for i, existing := range l.items {
		if existing.ID == item.ID {
			item.Order = existing.Order
			next := l.Items()
			next[i] = item
			l.items = next
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove drops the item with the given id
func (l *List) Remove(id uuid.UUID) error {
	next := make([]Item, 0, len(l.items))
	for _, item := range l.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(l.items) {
		return ErrItemNotFound
	}
	l.items = next
	return nil
}

// Move drag-reorders the list; orders become 0..n-1 unless nothing moved
func (l *List) Move(from, to int) (bool, error) {
	next, moved, err := position.ComputeReorder(l.items, from, to, func(item Item, order int) Item {
		item.Order = order
		return item
	})
	if err != nil {
		return false, err
	}
	l.items = next
	return moved, nil
}

// Changes diffs the current items against the persisted ones
func (l *List) Changes() Diff {
	return CompareAndUpdateItems(l.original, l.items)
}

// HasChanges reports whether anything needs saving
func (l *List) HasChanges() bool {
	return !l.Changes().Empty()
}
