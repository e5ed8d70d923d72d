package menu

// Item represents a selectable menu entry.
type Item struct {
	Label       string
	Description string
	Action      func()
	Enabled     bool

	owner *List
}

// NewItem returns an enabled item with the given label.
func NewItem(label string) *Item {
	return &Item{Label: label, Enabled: true}
}

// Owner reports the list the item was added to. It is nil until the item is
// added and is never reset afterwards, so an item removed from a list still
// reports that list and cannot be added anywhere else.
func (i *Item) Owner() *List {
	return i.owner
}

// HasAction reports whether activating the item does anything.
func (i *Item) HasAction() bool {
	return i != nil && i.Action != nil
}
