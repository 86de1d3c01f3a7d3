package command

import (
	"time"

	"vicon/internal/model"
)

// AssignStyleCommand rebinds a shape's style reference, e.g. when the
// user drags a style from the styles panel onto a shape.
type AssignStyleCommand struct {
	ts time.Time

	shape    *model.Shape
	newIndex int
	oldIndex int
}

// NewAssignStyleCommand returns a command assigning newIndex (a style
// index, or model.StyleCurrentColor) to shape.
func NewAssignStyleCommand(ts time.Time, shape *model.Shape, newIndex int) *AssignStyleCommand {
	return &AssignStyleCommand{ts: ts, shape: shape, newIndex: newIndex}
}

// InitCheck fails if shape is nil.
func (c *AssignStyleCommand) InitCheck() error {
	if c.shape == nil {
		return ErrInvalidArgument
	}
	return nil
}

// Perform records the previous index and assigns the new one.
func (c *AssignStyleCommand) Perform() error {
	c.oldIndex = c.shape.StyleIndex
	c.shape.StyleIndex = c.newIndex
	c.shape.Notify()
	return nil
}

// Undo restores the previous style index.
func (c *AssignStyleCommand) Undo() error {
	c.shape.StyleIndex = c.oldIndex
	c.shape.Notify()
	return nil
}

// Name returns the command's label.
func (c *AssignStyleCommand) Name() string { return "Assign Style" }

// Timestamp returns the command's creation time.
func (c *AssignStyleCommand) Timestamp() time.Time { return c.ts }

// SetColorCommand changes a solid style's color. Consecutive edits to
// the same style within the coalescing window (e.g. dragging a color
// picker slider) combine into a single undo step, per spec.md §8
// property 6.
type SetColorCommand struct {
	ts time.Time

	style    *model.Style
	newColor model.Color
	oldColor model.Color
}

// NewSetColorCommand returns a command setting style's color to c.
func NewSetColorCommand(ts time.Time, style *model.Style, c model.Color) *SetColorCommand {
	return &SetColorCommand{ts: ts, style: style, newColor: c}
}

// InitCheck fails if style is nil.
func (c *SetColorCommand) InitCheck() error {
	if c.style == nil {
		return ErrInvalidArgument
	}
	return nil
}

// Perform records the previous color and applies the new one.
func (c *SetColorCommand) Perform() error {
	c.oldColor = c.style.Color
	c.style.SetColor(c.newColor)
	return nil
}

// Undo restores the previous color.
func (c *SetColorCommand) Undo() error {
	c.style.SetColor(c.oldColor)
	return nil
}

// CombineWithNext absorbs a following SetColorCommand on the same style,
// keeping this command's oldColor but adopting next's newColor.
func (c *SetColorCommand) CombineWithNext(next Command) bool {
	n, ok := next.(*SetColorCommand)
	if !ok || n.style != c.style {
		return false
	}
	c.newColor = n.newColor
	c.style.SetColor(c.newColor)
	return true
}

// Name returns the command's label.
func (c *SetColorCommand) Name() string { return "Set Color" }

// Timestamp returns the command's creation time.
func (c *SetColorCommand) Timestamp() time.Time { return c.ts }

// SetGradientCommand replaces a style's gradient (or converts a solid
// style into a gradient style).
type SetGradientCommand struct {
	ts time.Time

	style       *model.Style
	newGradient *model.Gradient

	oldKind     model.StyleKind
	oldColor    model.Color
	oldGradient *model.Gradient
}

// NewSetGradientCommand returns a command setting style's gradient to g.
func NewSetGradientCommand(ts time.Time, style *model.Style, g *model.Gradient) *SetGradientCommand {
	return &SetGradientCommand{ts: ts, style: style, newGradient: g}
}

// InitCheck fails if style or the new gradient is nil.
func (c *SetGradientCommand) InitCheck() error {
	if c.style == nil || c.newGradient == nil {
		return ErrInvalidArgument
	}
	return nil
}

// Perform records the previous style state and installs the gradient.
func (c *SetGradientCommand) Perform() error {
	c.oldKind = c.style.Kind
	c.oldColor = c.style.Color
	c.oldGradient = c.style.Gradient
	c.style.SetGradient(c.newGradient)
	return nil
}

// Undo restores the previous style state in full (kind, color, and
// gradient pointer), since undoing a solid-to-gradient conversion must
// also un-convert it.
func (c *SetGradientCommand) Undo() error {
	c.style.Kind = c.oldKind
	c.style.Color = c.oldColor
	c.style.Gradient = c.oldGradient
	c.style.Notify()
	return nil
}

// Name returns the command's label.
func (c *SetGradientCommand) Name() string { return "Set Gradient" }

// Timestamp returns the command's creation time.
func (c *SetGradientCommand) Timestamp() time.Time { return c.ts }
