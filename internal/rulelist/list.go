// Package rulelist implements an ordered, uniquely keyed,
// user-reorderable list of rules.
//
// A [List] is immutable.
// Every operation returns a list:
// a new one if anything changed,
// or the receiver itself if the operation was a no-op.
// Callers can therefore detect changes by comparing pointers.
//
// Operations are total.
// Unknown keys and out-of-range indexes are no-ops, never errors.
package rulelist

import "go.abhg.dev/fraglight/internal/sliceutil"

// Item is an entry in a [List].
//
// T is the concrete item type,
// which must be able to produce a copy of itself
// with a different active flag.
type Item[T any] interface {
	// Key uniquely identifies the item within its list.
	Key() string

	// IsActive reports whether the item is switched on.
	IsActive() bool

	// WithActive returns a copy of the item
	// with the active flag set to the given value.
	WithActive(bool) T
}

// List is an ordered sequence of items with unique keys.
//
// The zero value and nil are valid empty lists.
type List[T Item[T]] struct {
	items    []T
	defaults []T // canonical order restored by Reset
}

// New builds a list in the canonical order given by defaults.
//
// If defaults contains more than one item with the same key,
// only the first is kept.
func New[T Item[T]](defaults []T) *List[T] {
	seen := make(map[string]struct{}, len(defaults))
	canon := make([]T, 0, len(defaults))
	for _, item := range defaults {
		if _, ok := seen[item.Key()]; ok {
			continue
		}
		seen[item.Key()] = struct{}{}
		canon = append(canon, item)
	}

	items := make([]T, len(canon))
	copy(items, canon)
	return &List[T]{items: items, defaults: canon}
}

// Len reports the number of items in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the items in list order.
func (l *List[T]) Items() []T {
	if l == nil || len(l.items) == 0 {
		return nil
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Keys returns the keys of all items in list order.
func (l *List[T]) Keys() []string {
	return sliceutil.Transform(l.Items(), func(item T) string {
		return item.Key()
	})
}

// Active returns the active items in list order.
func (l *List[T]) Active() []T {
	return sliceutil.Keep(l.Items(), func(item T) bool {
		return item.IsActive()
	})
}

// Index returns the position of the item with the given key,
// or -1 if there isn't one.
func (l *List[T]) Index(key string) int {
	if l == nil {
		return -1
	}
	for i, item := range l.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// Get returns the item with the given key.
func (l *List[T]) Get(key string) (item T, ok bool) {
	if idx := l.Index(key); idx >= 0 {
		return l.items[idx], true
	}
	return item, false
}

// Move relocates the item with the given key to the target index.
// Other items keep their relative order.
//
// Move is a no-op if the key is unknown,
// the target is outside [0, Len()),
// or the item is already at the target.
func (l *List[T]) Move(key string, target int) *List[T] {
	from := l.Index(key)
	if from < 0 || target < 0 || target >= l.Len() || from == target {
		return l
	}
	return l.with(sliceutil.Move(l.items, from, target))
}

// ToggleActive flips the active flag of the item with the given key.
// It is a no-op if the key is unknown.
func (l *List[T]) ToggleActive(key string) *List[T] {
	return l.Update(key, func(item T) T {
		return item.WithActive(!item.IsActive())
	})
}

// Update replaces the item with the given key
// with the result of patch applied to it.
//
// Update is a no-op if the key is unknown,
// or if patch attempts to change the item's key.
func (l *List[T]) Update(key string, patch func(T) T) *List[T] {
	idx := l.Index(key)
	if idx < 0 {
		return l
	}

	updated := patch(l.items[idx])
	if updated.Key() != key {
		return l
	}

	items := l.Items()
	items[idx] = updated
	return l.with(items)
}

// SetAllActive sets the active flag of every item to the given value.
func (l *List[T]) SetAllActive(active bool) *List[T] {
	if l.Len() == 0 {
		return l
	}
	return l.with(sliceutil.Transform(l.items, func(item T) T {
		return item.WithActive(active)
	}))
}

// Reset returns a list holding the canonical defaults,
// discarding all reordering and edits.
func (l *List[T]) Reset() *List[T] {
	if l == nil {
		return l
	}
	items := make([]T, len(l.defaults))
	copy(items, l.defaults)
	return l.with(items)
}

func (l *List[T]) with(items []T) *List[T] {
	return &List[T]{items: items, defaults: l.defaults}
}
