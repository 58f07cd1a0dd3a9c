// Package console provides the line-mode front-end: a readline prompt driving the same session
// as the terminal UI, for terminals without full-screen support.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/microwave/app"
	"github.com/lixenwraith/microwave/config"
	"github.com/lixenwraith/microwave/constants"
	"github.com/lixenwraith/microwave/render"
	"github.com/lixenwraith/microwave/timer"
	"github.com/rs/zerolog"
)

const helpText = `Microwave Commands:
  presets              - List presets, * marks the armed one
  select <n|duration>  - Arm preset n, or an exact duration (45000, 1m30s)
  start                - Start or resume cooking
  open                 - Open the door
  close                - Close the door and dismiss the dialog
  status               - Show the countdown
  help                 - Show this help
  quit                 - Exit`

// Console runs a session from a readline prompt
// The session is shared with the sampling ticker, so every access holds mu
type Console struct {
	mu      sync.Mutex
	session *app.Session
	clock   clockwork.Clock
	log     zerolog.Logger

	rl     *readline.Instance
	out    io.Writer
	styles styles
}

// New creates a console with its own readline instance
func New(session *app.Session, clock clockwork.Clock, log zerolog.Logger) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "microwave> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	c := newConsole(session, clock, rl.Stdout(), log)
	c.rl = rl
	// readline wraps stdout, so color support is probed on the real terminal
	c.styles = newStyles(os.Stdout)
	return c, nil
}

func newConsole(session *app.Session, clock clockwork.Clock, out io.Writer, log zerolog.Logger) *Console {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Console{session: session, clock: clock, out: out, log: log, styles: newStyles(out)}
}

// Run reads commands until quit, EOF or ctx is done
func (c *Console) Run(ctx context.Context) error {
	defer c.rl.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.sampleLoop(ctx)

	fmt.Fprintln(c.out, helpText)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			// EOF
			return nil
		}

		reply, more := c.Execute(line)
		if reply != "" {
			fmt.Fprintln(c.out, reply)
		}
		if !more {
			return nil
		}
	}
}

// sampleLoop advances the countdown in the background so the ding prints while the prompt waits
func (c *Console) sampleLoop(ctx context.Context) {
	ticker := c.clock.NewTicker(constants.ConsoleSampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if msg := c.Tick(); msg != "" {
				fmt.Fprintln(c.out, msg)
			}
		}
	}
}

// Tick samples the session once, returns the ding message on the tick the countdown ends
func (c *Console) Tick() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sampleLocked()
}

func (c *Console) sampleLocked() string {
	before := c.session.Snapshot().State
	snap := c.session.Sample()
	if before == timer.StateRunning && snap.State == timer.StateEnded {
		return c.styles.ding.Render(constants.DialogDing)
	}
	return ""
}

// Execute runs one command line, returns the reply and false when the console should exit
func (c *Console) Execute(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", true
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	c.mu.Lock()
	defer c.mu.Unlock()

	// Catch up before acting so replies reflect the current time
	ding := c.sampleLocked()
	reply, more := c.dispatch(cmd, args)
	if ding != "" {
		reply = strings.TrimSpace(ding + "\n" + reply)
	}
	return reply, more
}

func (c *Console) dispatch(cmd string, args []string) (string, bool) {
	switch cmd {
	case "help", "?":
		return helpText, true
	case "presets", "p":
		return c.cmdPresets(), true
	case "select", "s":
		return c.cmdSelect(args), true
	case "start", "go", "g":
		return c.cmdStart(), true
	case "open", "o":
		c.session.Open()
		return c.session.Dialog(), true
	case "close", "c":
		if c.session.CloseDialog() {
			return "door closed", true
		}
		return "nothing to close", true
	case "status", "st":
		return c.cmdStatus(), true
	case "quit", "exit", "q":
		c.session.Dispatch(app.Input{Cmd: app.CmdQuit})
		return "bye", false
	default:
		c.log.Debug().Str("cmd", cmd).Msg("unknown console command")
		return fmt.Sprintf("unknown command: %s (type 'help' for commands)", cmd), true
	}
}

func (c *Console) cmdPresets() string {
	var b strings.Builder
	armed := c.session.Snapshot().DurationMs
	for i, p := range c.session.Presets() {
		marker := " "
		if i == c.session.PresetIndex() && p == armed {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %d) %s\n", marker, i+1, render.PresetLabel(p))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Console) cmdSelect(args []string) string {
	if len(args) != 1 {
		return "usage: select <n|duration>"
	}

	var err error
	presets := c.session.Presets()
	if n, perr := strconv.Atoi(args[0]); perr == nil && n >= 1 && n <= len(presets) {
		err = c.session.SelectPreset(n - 1)
	} else {
		ms, perr := config.ParseDurationMs(args[0])
		if perr != nil {
			return "error: " + perr.Error()
		}
		err = c.session.SelectDuration(ms)
	}
	if err != nil {
		return c.styles.rejected.Render("rejected: " + err.Error())
	}
	return "armed " + timer.Format(c.session.Snapshot().DurationMs)
}

func (c *Console) cmdStart() string {
	if err := c.session.Go(); err != nil {
		return c.styles.rejected.Render("rejected: " + err.Error())
	}
	return "cooking, " + timer.Format(c.session.Snapshot().RemainingMs) + " left"
}

func (c *Console) cmdStatus() string {
	snap := c.session.Snapshot()
	line := fmt.Sprintf("%s  %s / %s", c.styles.label.Render(render.StateLabel(snap.State)),
		timer.Format(snap.RemainingMs), timer.Format(snap.DurationMs))
	if d := c.session.Dialog(); d != "" {
		line += "\n[" + d + "]"
	}
	return line
}
