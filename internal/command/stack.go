package command

// Stack is the editor's two-stack undo/redo engine (spec.md §4.5): a
// Perform pushes onto the undo stack (after attempting to coalesce with
// the top), Undo pops undo onto redo, Redo pops redo onto undo, and any
// new Perform clears the redo stack.
type Stack struct {
	undo []Command
	redo []Command

	// saved is the command that was on top of the undo stack at the last
	// Save (nil initially, i.e. the empty undo stack). Comparing it with
	// the current top keeps IsSaved correct across Undo/Redo round-trips,
	// per spec.md §4.5's dirty-tracking rule.
	saved Command
}

// top returns the top of the undo stack, or nil if it is empty.
func (s *Stack) top() Command {
	if len(s.undo) == 0 {
		return nil
	}
	return s.undo[len(s.undo)-1]
}

// NewStack returns an empty, clean stack.
func NewStack() *Stack {
	return &Stack{}
}

// Perform runs cmd and pushes it onto the undo stack, unless it could be
// coalesced into the current top command. Any pending redo history is
// discarded, since it no longer applies after a new forward action.
//
// cmd.InitCheck is consulted first; a failing command is neither
// performed nor pushed.
func (s *Stack) Perform(cmd Command) error {
	if err := cmd.InitCheck(); err != nil {
		return err
	}

	if len(s.undo) > 0 {
		top := s.undo[len(s.undo)-1]
		if c, ok := top.(Combiner); ok {
			if cmd.Timestamp().Sub(top.Timestamp()) < CoalesceWindow && c.CombineWithNext(cmd) {
				// cmd has been absorbed into top; top already applied
				// the merged effect, so cmd itself is never performed.
				s.redo = s.redo[:0]
				return nil
			}
		}
	}

	if err := cmd.Perform(); err != nil {
		return err
	}
	s.undo = append(s.undo, cmd)
	s.redo = s.redo[:0]
	return nil
}

// Undo pops the top undo command, reverses it, and pushes it onto redo.
func (s *Stack) Undo() error {
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}
	cmd := s.undo[len(s.undo)-1]
	if err := cmd.Undo(); err != nil {
		return err
	}
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, cmd)
	return nil
}

// Redo pops the top redo command, re-performs it, and pushes it back
// onto undo.
func (s *Stack) Redo() error {
	if len(s.redo) == 0 {
		return ErrNothingToRedo
	}
	cmd := s.redo[len(s.redo)-1]
	if err := redo(cmd); err != nil {
		return err
	}
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, cmd)
	return nil
}

// Save records the current top of the undo stack as the saved point.
func (s *Stack) Save() {
	s.saved = s.top()
}

// IsSaved reports whether the top of the undo stack is the command
// recorded by the last Save.
func (s *Stack) IsSaved() bool {
	return s.top() == s.saved
}

// Clear discards all undo/redo history and the saved point; the emptied
// stack then reports IsSaved as true.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
	s.saved = nil
}

// GetUndoName returns the name of the command Undo would reverse, or ""
// if the undo stack is empty.
func (s *Stack) GetUndoName() string {
	if len(s.undo) == 0 {
		return ""
	}
	return s.undo[len(s.undo)-1].Name()
}

// GetRedoName returns the name of the command Redo would re-perform, or
// "" if the redo stack is empty.
func (s *Stack) GetRedoName() string {
	if len(s.redo) == 0 {
		return ""
	}
	return s.redo[len(s.redo)-1].Name()
}

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }
