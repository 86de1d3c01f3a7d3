package command

import "time"

// AddCommand inserts one item into a slice-backed container (one of
// model.Icon's Styles/Paths/Shapes) at a given index. The container is
// addressed by a slice pointer rather than a shared container interface,
// since model.Icon exposes three independent plain slices instead of one
// generic collection type.
type AddCommand[T any] struct {
	name   string
	ts     time.Time
	items  *[]T
	item   T
	index  int // insertion index; -1 appends
	notify func()
}

// NewAddCommand returns a command that inserts item into *items at
// index (or appends, if index < 0), calling notify after the slice changes.
func NewAddCommand[T any](name string, ts time.Time, items *[]T, item T, index int, notify func()) *AddCommand[T] {
	return &AddCommand[T]{name: name, ts: ts, items: items, item: item, index: index, notify: notify}
}

// InitCheck fails if the target slice pointer is nil.
func (c *AddCommand[T]) InitCheck() error {
	if c.items == nil {
		return ErrInvalidArgument
	}
	return nil
}

// Perform inserts the item.
func (c *AddCommand[T]) Perform() error {
	if c.index < 0 || c.index > len(*c.items) {
		c.index = len(*c.items)
	}
	s := append(*c.items, c.item)
	copy(s[c.index+1:], s[c.index:])
	s[c.index] = c.item
	*c.items = s
	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Undo removes the inserted item.
func (c *AddCommand[T]) Undo() error {
	s := *c.items
	*c.items = append(s[:c.index], s[c.index+1:]...)
	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Name returns the command's label.
func (c *AddCommand[T]) Name() string { return c.name }

// Timestamp returns the command's creation time.
func (c *AddCommand[T]) Timestamp() time.Time { return c.ts }

// RemoveCommand deletes one item from a slice-backed container by index,
// retaining it so Undo can reinsert it at the same position.
type RemoveCommand[T any] struct {
	name    string
	ts      time.Time
	items   *[]T
	index   int
	removed T
	notify  func()
}

// NewRemoveCommand returns a command that removes *items[index].
func NewRemoveCommand[T any](name string, ts time.Time, items *[]T, index int, notify func()) *RemoveCommand[T] {
	return &RemoveCommand[T]{name: name, ts: ts, items: items, index: index, notify: notify}
}

// InitCheck fails if index is out of range.
func (c *RemoveCommand[T]) InitCheck() error {
	if c.items == nil || c.index < 0 || c.index >= len(*c.items) {
		return ErrInvalidArgument
	}
	return nil
}

// Perform removes the item, retaining it for Undo.
func (c *RemoveCommand[T]) Perform() error {
	s := *c.items
	c.removed = s[c.index]
	*c.items = append(s[:c.index:c.index], s[c.index+1:]...)
	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Undo reinserts the removed item at its original index.
func (c *RemoveCommand[T]) Undo() error {
	s := *c.items
	s = append(s, c.removed)
	copy(s[c.index+1:], s[c.index:])
	s[c.index] = c.removed
	*c.items = s
	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Name returns the command's label.
func (c *RemoveCommand[T]) Name() string { return c.name }

// Timestamp returns the command's creation time.
func (c *RemoveCommand[T]) Timestamp() time.Time { return c.ts }

// MoveCommand reorders a slice-backed container. It snapshots the full
// slice before and after the move rather than computing an index shift,
// trading a small amount of memory for an Undo that can never drift out
// of sync with Perform's insert/delete bookkeeping.
type MoveCommand[T any] struct {
	name   string
	ts     time.Time
	items  *[]T
	from   int
	to     int
	before []T
	notify func()
}

// NewMoveCommand returns a command that moves *items[from] to index to.
func NewMoveCommand[T any](name string, ts time.Time, items *[]T, from, to int, notify func()) *MoveCommand[T] {
	return &MoveCommand[T]{name: name, ts: ts, items: items, from: from, to: to, notify: notify}
}

// InitCheck fails if either index is out of range.
func (c *MoveCommand[T]) InitCheck() error {
	if c.items == nil {
		return ErrInvalidArgument
	}
	n := len(*c.items)
	if c.from < 0 || c.from >= n || c.to < 0 || c.to >= n {
		return ErrInvalidArgument
	}
	return nil
}

// Perform snapshots the slice, then moves the item.
func (c *MoveCommand[T]) Perform() error {
	s := *c.items
	c.before = append([]T(nil), s...)

	item := s[c.from]
	rest := append(append([]T(nil), s[:c.from]...), s[c.from+1:]...)
	moved := append([]T(nil), rest[:c.to]...)
	moved = append(moved, item)
	moved = append(moved, rest[c.to:]...)
	*c.items = moved

	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Undo restores the pre-move snapshot.
func (c *MoveCommand[T]) Undo() error {
	*c.items = append([]T(nil), c.before...)
	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Name returns the command's label.
func (c *MoveCommand[T]) Name() string { return c.name }

// Timestamp returns the command's creation time.
func (c *MoveCommand[T]) Timestamp() time.Time { return c.ts }
