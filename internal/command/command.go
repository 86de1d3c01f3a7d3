// Package command implements the two-stack undo/redo engine described
// in spec.md §4.5: a Command contract, a Stack that performs/undoes/
// redoes/coalesces commands, a CompoundCommand, and the concrete
// commands the editor issues against the data model.
package command

import "time"

// CoalesceWindow is the maximum age (spec.md §4.5 step 3, §8 property 6)
// of a previous command that may absorb the next command into one undo
// step.
const CoalesceWindow = time.Second

// Command is the contract every undoable editor action satisfies.
type Command interface {
	// InitCheck reports whether the command's preconditions hold. A
	// command that fails InitCheck is dropped without being performed.
	InitCheck() error
	// Perform executes the command's forward action.
	Perform() error
	// Undo reverses Perform.
	Undo() error
	// Name is a human-readable label (e.g. for an Edit menu entry).
	Name() string
	// Timestamp is the command's creation time, used by the coalescing
	// window.
	Timestamp() time.Time
}

// Redoer is implemented by commands whose redo action differs from a
// plain re-Perform (most commands don't need this; Stack.Redo falls
// back to Perform when a command doesn't implement Redoer).
type Redoer interface {
	Redo() error
}

// Combiner is implemented by commands that can absorb a following
// command of the same kind into a single undo step.
type Combiner interface {
	// CombineWithNext reports whether next was absorbed into the
	// receiver. When true, the receiver has applied next's effect itself
	// and Stack.Perform neither performs next nor pushes it onto the undo
	// stack.
	CombineWithNext(next Command) bool
}

func redo(cmd Command) error {
	if r, ok := cmd.(Redoer); ok {
		return r.Redo()
	}
	return cmd.Perform()
}
