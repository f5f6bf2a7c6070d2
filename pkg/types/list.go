package types

// List is an identifier-addressed collection of items that preserves
// construction order. Screens build one List per invocation and never
// mutate it afterwards, except when grouping into categories.
type List struct {
	keys  []string
	byKey map[string]Item
}

// NewList builds a list from items in the given order.
func NewList(items ...Item) *List {
	l := &List{byKey: make(map[string]Item, len(items))}
	for _, it := range items {
		l.Add(it)
	}
	return l
}

// Add appends an item. Re-adding an existing key replaces the item but
// keeps its original position.
func (l *List) Add(it Item) {
	if _, ok := l.byKey[it.Key()]; !ok {
		l.keys = append(l.keys, it.Key())
	}
	l.byKey[it.Key()] = it
}

// Get returns the item stored under key.
func (l *List) Get(key string) (Item, bool) {
	it, ok := l.byKey[key]
	return it, ok
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.keys)
}

// Items returns all items in construction order.
func (l *List) Items() []Item {
	out := make([]Item, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, l.byKey[k])
	}
	return out
}

// Keys returns the identifiers in construction order.
func (l *List) Keys() []string {
	return append([]string(nil), l.keys...)
}

// Lines renders every item to its menu line, in construction order.
func (l *List) Lines(opts DisplayOptions) []string {
	out := make([]string, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, l.byKey[k].Line(opts))
	}
	return out
}
