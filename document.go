package vicon

import (
	"vicon/internal/attr"
	"vicon/internal/command"
)

// Document owns one Icon graph plus the undo/redo stack that edits it —
// the editor-side container spec.md §5 refers to as owning an Icon
// graph exclusively ("An Icon graph is owned by exactly one container
// (Document in the editor, caller in the library)").
type Document struct {
	Icon  *Icon
	stack *command.Stack
}

// NewDocument wraps icon in a fresh, clean undo/redo stack.
func NewDocument(icon *Icon) *Document {
	return &Document{Icon: icon, stack: command.NewStack()}
}

// Perform runs cmd through the document's undo/redo stack.
func (d *Document) Perform(cmd command.Command) error {
	return d.stack.Perform(cmd)
}

// Undo reverses the most recent command.
func (d *Document) Undo() error { return d.stack.Undo() }

// Redo re-applies the most recently undone command.
func (d *Document) Redo() error { return d.stack.Redo() }

// Save marks the document clean at its current top undo command.
func (d *Document) Save() { d.stack.Save() }

// IsSaved reports whether the document has no unsaved changes, i.e. its
// top undo command is the one recorded by the last Save.
func (d *Document) IsSaved() bool { return d.stack.IsSaved() }

// CanUndo reports whether Undo would do anything.
func (d *Document) CanUndo() bool { return d.stack.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (d *Document) CanRedo() bool { return d.stack.CanRedo() }

// UndoName and RedoName label the next Undo/Redo action, e.g. for an
// Edit menu entry.
func (d *Document) UndoName() string { return d.stack.GetUndoName() }
func (d *Document) RedoName() string { return d.stack.GetRedoName() }

// ReadIconAttribute loads an icon stored as a filesystem extended
// attribute on path (default attribute name "BEOS:ICON" when name is
// empty), per spec.md §6's get_vector_icon.
func ReadIconAttribute(path, name string) (*Icon, error) {
	data, err := attr.ReadIconAttribute(path, name)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// WriteIconAttribute encodes icon as the flat format and stores it as a
// filesystem extended attribute on path (default attribute name
// "BEOS:ICON" when name is empty).
func WriteIconAttribute(path, name string, icon *Icon) error {
	data, err := Encode(icon)
	if err != nil {
		return err
	}
	return attr.WriteIconAttribute(path, name, data)
}
