package command

import "errors"

var (
	// ErrInvalidArgument is returned by InitCheck for malformed command
	// arguments (e.g. an empty item list, an out-of-range index).
	ErrInvalidArgument = errors.New("command: invalid argument")
	// ErrEmptyCompound is returned by CompoundCommand.InitCheck when it
	// owns no sub-commands.
	ErrEmptyCompound = errors.New("command: compound command has no sub-commands")
	// ErrNothingToUndo is returned by Stack.Undo when the undo stack is empty.
	ErrNothingToUndo = errors.New("command: nothing to undo")
	// ErrNothingToRedo is returned by Stack.Redo when the redo stack is empty.
	ErrNothingToRedo = errors.New("command: nothing to redo")
)
