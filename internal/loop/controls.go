package loop

import (
	"github.com/tomz197/springlaunch/internal/game"
	"github.com/tomz197/springlaunch/internal/input"
)

// Per key press.
const (
	angleStep   = 1.0
	tensionStep = 1.0
)

// Commands maps one frame of key input to session commands. A reset is
// applied before adjustments and fire, so "r" then space in the same frame
// fires from the fresh pose.
func Commands(in input.Input) []game.Command {
	var cmds []game.Command
	if in.Reset {
		cmds = append(cmds, game.Command{Kind: game.CmdReset})
	}
	if d := in.AngleUp - in.AngleDown; d != 0 {
		cmds = append(cmds, game.Command{Kind: game.CmdAdjustAngle, Value: float64(d) * angleStep})
	}
	if d := in.TensionUp - in.TensionDown; d != 0 {
		cmds = append(cmds, game.Command{Kind: game.CmdAdjustTension, Value: float64(d) * tensionStep})
	}
	if in.Fire {
		cmds = append(cmds, game.Command{Kind: game.CmdFire})
	}
	return cmds
}
