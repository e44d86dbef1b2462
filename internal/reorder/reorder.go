// Package reorder turns user gestures into single-item list moves.
//
// Hosts feed pointer or keyboard input into a Gesture,
// or use Up and Down for step moves.
// Either way, at most one Move is produced per completed gesture.
package reorder

// Move relocates the item with the given ID to the Target index.
type Move struct {
	ID     string
	Target int
}

// Indexer is a list of keyed items.
// *rulelist.List satisfies this interface.
type Indexer interface {
	// Index returns the position of the given key, or -1.
	Index(key string) int

	// Len returns the number of items.
	Len() int
}

// Gesture tracks a drag-and-drop in progress.
// The zero value is an idle gesture.
type Gesture struct {
	origin string // dragged item; empty if idle
	over   string // item currently under the pointer
}

// Begin starts dragging the item with the given ID.
// An in-progress gesture is abandoned.
func (g *Gesture) Begin(id string) {
	g.origin = id
	g.over = ""
}

// Over records that the dragged item is hovering over the given item.
// It does nothing if no gesture is in progress.
func (g *Gesture) Over(id string) {
	if g.origin == "" {
		return
	}
	g.over = id
}

// Leave records that the dragged item is no longer over any item.
func (g *Gesture) Leave() {
	g.over = ""
}

// Cancel abandons the gesture without producing a move.
func (g *Gesture) Cancel() {
	*g = Gesture{}
}

// Active reports whether a gesture is in progress.
func (g *Gesture) Active() bool {
	return g.origin != ""
}

// Dragging returns the ID of the dragged item, if any.
func (g *Gesture) Dragging() string {
	return g.origin
}

// Target returns the ID of the item under the dragged item, if any.
func (g *Gesture) Target() string {
	return g.over
}

// Release ends the gesture.
//
// It returns the move that places the dragged item at the position
// of the item it was released over.
// No move is produced if the item was released over nothing,
// over itself, or if either item is missing from l.
// The gesture is idle afterwards in all cases.
func (g *Gesture) Release(l Indexer) (Move, bool) {
	origin, over := g.origin, g.over
	g.Cancel()

	if origin == "" || over == "" || origin == over {
		return Move{}, false
	}
	if l.Index(origin) < 0 {
		return Move{}, false
	}
	target := l.Index(over)
	if target < 0 {
		return Move{}, false
	}
	return Move{ID: origin, Target: target}, true
}

// Up returns the move that swaps the given item with its predecessor.
// It reports false if the item is missing or already first.
func Up(l Indexer, id string) (Move, bool) {
	idx := l.Index(id)
	if idx <= 0 {
		return Move{}, false
	}
	return Move{ID: id, Target: idx - 1}, true
}

// Down returns the move that swaps the given item with its successor.
// It reports false if the item is missing or already last.
func Down(l Indexer, id string) (Move, bool) {
	idx := l.Index(id)
	if idx < 0 || idx >= l.Len()-1 {
		return Move{}, false
	}
	return Move{ID: id, Target: idx + 1}, true
}
