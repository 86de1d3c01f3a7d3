package command

import "time"

// CompoundCommand groups several sub-commands into a single undo step.
// Perform runs sub-commands front-to-back; Undo reverses back-to-front.
// A sub-command failing mid-Perform stops the compound where it is — no
// automatic rollback of the commands that already succeeded (spec.md
// §4.5: "compound commands do not roll back partial failures").
type CompoundCommand struct {
	name string
	cmds []Command
	ts   time.Time
}

// NewCompoundCommand returns a compound command named name, owning cmds
// in the given order.
func NewCompoundCommand(name string, ts time.Time, cmds ...Command) *CompoundCommand {
	return &CompoundCommand{name: name, cmds: cmds, ts: ts}
}

// InitCheck fails if the compound owns no sub-commands.
func (c *CompoundCommand) InitCheck() error {
	if len(c.cmds) == 0 {
		return ErrEmptyCompound
	}
	return nil
}

// Perform runs every sub-command front-to-back, stopping (without
// rollback) at the first failure.
func (c *CompoundCommand) Perform() error {
	for _, sub := range c.cmds {
		if err := sub.Perform(); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverses every sub-command back-to-front, stopping (without
// rollback) at the first failure.
func (c *CompoundCommand) Undo() error {
	for i := len(c.cmds) - 1; i >= 0; i-- {
		if err := c.cmds[i].Undo(); err != nil {
			return err
		}
	}
	return nil
}

// Redo re-performs every sub-command front-to-back, using each
// sub-command's own Redo when it implements Redoer.
func (c *CompoundCommand) Redo() error {
	for _, sub := range c.cmds {
		if err := redo(sub); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the compound's label.
func (c *CompoundCommand) Name() string { return c.name }

// Timestamp returns the compound's creation time.
func (c *CompoundCommand) Timestamp() time.Time { return c.ts }
