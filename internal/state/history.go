package state

// History owns the marks of one canvas: the committed sequence, replayed
// oldest-first on every repaint, and the stack of undone marks available for
// redo. An element lives in exactly one of the two at any time.
//
// History is generic so the undo rules can be tested without building real
// drawables.
type History[T any] struct {
	committed []T
	undone    []T

	// OnChange fires after every mutating operation. The UI hooks this to
	// schedule a repaint; operations never repaint directly.
	OnChange func()
}

func NewHistory[T any]() *History[T] {
	return &History[T]{}
}

// Commit appends a new mark. Any redo history is discarded: a fresh edit
// invalidates the undone stack unconditionally.
func (h *History[T]) Commit(item T) {
	h.committed = append(h.committed, item)
	h.undone = h.undone[:0]
	h.emit()
}

// Undo moves the most recent committed mark onto the undone stack. With
// nothing committed it is a silent no-op and fires no notification.
func (h *History[T]) Undo() {
	if len(h.committed) == 0 {
		return
	}
	last := h.committed[len(h.committed)-1]
	h.committed = h.committed[:len(h.committed)-1]
	h.undone = append(h.undone, last)
	h.emit()
}

// Redo moves the most recently undone mark back onto the committed sequence.
// The mark is re-appended at the end, not reinserted at its original
// position: undo/redo is a single global stack pair. Empty stack is a silent
// no-op.
func (h *History[T]) Redo() {
	if len(h.undone) == 0 {
		return
	}
	last := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.committed = append(h.committed, last)
	h.emit()
}

// Clear empties both sequences. There is no undoing a clear.
func (h *History[T]) Clear() {
	h.committed = h.committed[:0]
	h.undone = h.undone[:0]
	h.emit()
}

// Committed returns the marks to replay, oldest first. The slice is owned by
// the history; callers iterate it during a single repaint and must not
// retain or mutate it.
func (h *History[T]) Committed() []T { return h.committed }

// Undone returns the redo stack, most recent undo last.
func (h *History[T]) Undone() []T { return h.undone }

func (h *History[T]) CanUndo() bool { return len(h.committed) > 0 }

func (h *History[T]) CanRedo() bool { return len(h.undone) > 0 }

func (h *History[T]) emit() {
	if h.OnChange != nil {
		h.OnChange()
	}
}
