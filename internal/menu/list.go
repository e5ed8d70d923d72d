package menu

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrInvalidArgument is returned for nil items and unknown directions.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyOwned is returned when an item already belongs to a list.
	ErrAlreadyOwned = errors.New("item already belongs to a list")
)

// Direction selects which neighbour MoveSelection steps to.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// List is an ordered ring of items with a single selected entry. The slot
// after the last item is the first one and vice versa; new items are placed
// at the seam just before the first item, i.e. at the end of the slice.
type List struct {
	items    []*Item
	selected int
}

// NewList builds a list by adding the given items one at a time. The items
// are validated up front so a failure leaves every item unowned.
func NewList(items ...*Item) (*List, error) {
	for i, item := range items {
		switch {
		case item == nil:
			return nil, fmt.Errorf("item %d: nil item: %w", i, ErrInvalidArgument)
		case item.owner != nil, slices.Index(items[:i], item) >= 0:
			return nil, fmt.Errorf("item %d %q: %w", i, item.Label, ErrAlreadyOwned)
		}
	}
	l := &List{selected: -1}
	for _, item := range items {
		_ = l.Add(item)
	}
	return l, nil
}

// Count returns the number of items in the list.
func (l *List) Count() int {
	return len(l.items)
}

// IsEmpty reports whether the list holds no items.
func (l *List) IsEmpty() bool {
	return len(l.items) == 0
}

// Selected returns the selected item, or nil when the list is empty.
func (l *List) Selected() *Item {
	if len(l.items) == 0 || l.selected < 0 {
		return nil
	}
	return l.items[l.selected]
}

// Add appends an item at the seam and takes ownership of it. The first item
// added to an empty list becomes selected.
func (l *List) Add(item *Item) error {
	if item == nil {
		return fmt.Errorf("add: nil item: %w", ErrInvalidArgument)
	}
	if item.owner != nil {
		return fmt.Errorf("add %q: %w", item.Label, ErrAlreadyOwned)
	}
	item.owner = l
	l.items = append(l.items, item)
	if len(l.items) == 1 {
		l.selected = 0
	}
	return nil
}

// Remove unlinks the item and reports whether it was present. Removing the
// selected item moves the selection to its successor first.
func (l *List) Remove(item *Item) bool {
	idx := l.IndexOf(item)
	if idx < 0 {
		return false
	}
	n := len(l.items)
	switch {
	case n == 1:
		l.selected = -1
	case idx == l.selected:
		if idx == n-1 {
			l.selected = 0
		}
	case idx < l.selected:
		l.selected--
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return true
}

// Clear drops every item. Owners recorded on the items are left untouched.
func (l *List) Clear() {
	l.items = nil
	l.selected = -1
}

// IndexOf returns the insertion position of item, or -1.
func (l *List) IndexOf(item *Item) int {
	if item == nil || len(l.items) == 0 {
		return -1
	}
	return slices.Index(l.items, item)
}

// All yields the items in insertion order, starting at the first item.
func (l *List) All() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for i := 0; i < len(l.items); i++ {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// Items returns a snapshot of the list contents.
func (l *List) Items() []*Item {
	return slices.Clone(l.items)
}

// Select makes item the selection if it is present and enabled.
func (l *List) Select(item *Item) bool {
	if item == nil || !item.Enabled {
		return false
	}
	idx := l.IndexOf(item)
	if idx < 0 {
		return false
	}
	l.selected = idx
	return true
}

// MoveSelection steps the selection around the ring in the given direction,
// skipping disabled items. The walk stops after one full lap: when no other
// item is enabled the selection ends where it started.
func (l *List) MoveSelection(dir Direction) error {
	var step int
	switch dir {
	case Previous:
		step = -1
	case Next:
		step = 1
	default:
		return fmt.Errorf("move selection %s: %w", dir, ErrInvalidArgument)
	}
	n := len(l.items)
	if n == 0 {
		return nil
	}
	idx := l.selected
	for range n {
		idx = (idx + step + n) % n
		if l.items[idx].Enabled {
			break
		}
	}
	l.selected = idx
	return nil
}
