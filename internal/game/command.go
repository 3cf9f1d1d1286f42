package game

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Apply for an unrecognised command kind.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind names an input from a front-end.
type CommandKind string

const (
	CmdSetTension    CommandKind = "set_tension"
	CmdSetAngle      CommandKind = "set_angle"
	CmdAdjustTension CommandKind = "adjust_tension"
	CmdAdjustAngle   CommandKind = "adjust_angle"
	CmdFire          CommandKind = "fire"
	CmdReset         CommandKind = "reset"
)

// Command is one input. Value is the new value for set_*, the delta for
// adjust_*. PreserveScore applies to reset.
type Command struct {
	Kind          CommandKind `json:"type"`
	Value         float64     `json:"value,omitempty"`
	PreserveScore bool        `json:"preserve_score,omitempty"`
}

// Apply dispatches cmd to the session. Commands that are not allowed in the
// current state are ignored; only an unknown kind is an error.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdSetTension:
		s.SetTension(cmd.Value)
	case CmdSetAngle:
		s.SetAngle(cmd.Value)
	case CmdAdjustTension:
		s.SetTension(s.spring.Tension + cmd.Value)
	case CmdAdjustAngle:
		s.SetAngle(s.spring.Angle + cmd.Value)
	case CmdFire:
		s.Fire()
	case CmdReset:
		s.ResetRound(cmd.PreserveScore)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	return nil
}
