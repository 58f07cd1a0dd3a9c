package app

import "github.com/gdamore/tcell/v2"

// Command is one user action, independent of the input device
type Command int

const (
	CmdNone Command = iota
	CmdPrevPreset
	CmdNextPreset
	CmdPreset // Arg carries the preset index
	CmdGo
	CmdOpen
	CmdClose
	CmdMute
	CmdQuit
)

// Input is a resolved command with its argument
type Input struct {
	Cmd Command
	Arg int
}

// CommandFor maps a key press to a command
func CommandFor(key tcell.Key, r rune) Input {
	switch key {
	case tcell.KeyLeft:
		return Input{Cmd: CmdPrevPreset}
	case tcell.KeyRight:
		return Input{Cmd: CmdNextPreset}
	case tcell.KeyEnter:
		return Input{Cmd: CmdGo}
	case tcell.KeyEscape:
		return Input{Cmd: CmdClose}
	case tcell.KeyCtrlC:
		return Input{Cmd: CmdQuit}
	case tcell.KeyRune:
	default:
		return Input{}
	}

	switch {
	case r >= '1' && r <= '9':
		return Input{Cmd: CmdPreset, Arg: int(r - '1')}
	case r == 'g' || r == 'G':
		return Input{Cmd: CmdGo}
	case r == 'o' || r == 'O':
		return Input{Cmd: CmdOpen}
	case r == 'c' || r == 'C':
		return Input{Cmd: CmdClose}
	case r == 'm' || r == 'M':
		return Input{Cmd: CmdMute}
	case r == 'q' || r == 'Q':
		return Input{Cmd: CmdQuit}
	case r == 'h':
		return Input{Cmd: CmdPrevPreset}
	case r == 'l':
		return Input{Cmd: CmdNextPreset}
	}
	return Input{}
}

// Dispatch applies in to the session, returns false when the session should end
// Rejected commands are already reported on the status line
func (s *Session) Dispatch(in Input) bool {
	switch in.Cmd {
	case CmdPrevPreset:
		_ = s.StepPreset(-1)
	case CmdNextPreset:
		_ = s.StepPreset(1)
	case CmdPreset:
		_ = s.SelectPreset(in.Arg)
	case CmdGo:
		_ = s.Go()
	case CmdOpen:
		s.Open()
	case CmdClose:
		s.CloseDialog()
	case CmdMute:
		s.ToggleMute()
	case CmdQuit:
		s.player.StopHum()
		s.log.Debug().Msg("quit")
		return false
	}
	return true
}
