// Package history implements linear undo/redo over full floor-set snapshots.
// A mutating operation pushes the pre-mutation state before touching the
// model, and any new edit invalidates the redo stack.
package history

import "github.com/openfloor/planner/pkg/plan"

// History holds the undo and redo stacks. Limit bounds the undo depth; zero
// means unbounded, matching a single interactive session where memory growth
// is acceptable.
type History struct {
	undo  [][]*plan.Floor
	redo  [][]*plan.Floor
	limit int
}

// New creates a history with the given undo depth limit (0 = unbounded).
func New(limit int) *History {
	return &History{limit: limit}
}

// Save deep-copies the current floor set onto the undo stack and clears the
// redo stack. Call strictly before applying the mutation it protects.
func (h *History) Save(floors []*plan.Floor) {
	h.undo = append(h.undo, plan.CloneFloors(floors))
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, pushing current onto the redo stack.
// Returns the restored floor set, or ok=false if there is nothing to undo.
func (h *History) Undo(current []*plan.Floor) ([]*plan.Floor, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, plan.CloneFloors(current))
	return top, true
}

// Redo is the inverse of Undo.
func (h *History) Redo(current []*plan.Floor) ([]*plan.Floor, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, plan.CloneFloors(current))
	return top, true
}

// CanUndo reports whether an undo snapshot exists.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo snapshot exists.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Clear drops both stacks. Used when a new project is loaded.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
