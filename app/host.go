package app

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/microwave/constants"
	"github.com/lixenwraith/microwave/render"
	"github.com/lixenwraith/microwave/terminal"
	"github.com/rs/zerolog"
)

// Screen is the part of tcell.Screen the host loop uses
type Screen interface {
	render.Surface
	PollEvent() tcell.Event
	Show()
	Sync()
}

// Host runs the terminal front-end for one session
type Host struct {
	session  *Session
	screen   Screen
	renderer *render.TerminalRenderer
	clock    clockwork.Clock
	interval time.Duration
	log      zerolog.Logger
}

// NewHost wires a session to a screen; a zero interval selects the default frame rate
func NewHost(session *Session, screen Screen, renderer *render.TerminalRenderer, clock clockwork.Clock, interval time.Duration, log zerolog.Logger) *Host {
	if interval <= 0 {
		interval = constants.FrameUpdateInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Host{
		session:  session,
		screen:   screen,
		renderer: renderer,
		clock:    clock,
		interval: interval,
		log:      log,
	}
}

// Run polls input and renders frames until quit or ctx is done
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, constants.EventQueueSize)
	go h.poll(ctx, events)

	return h.loop(ctx, events)
}

// poll forwards screen events, it ends when the screen is finalized or ctx is done
func (h *Host) poll(ctx context.Context, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(events)

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Host) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := h.clock.NewTicker(h.interval)
	defer ticker.Stop()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
			// Draw immediately, don't wait for the next tick
			h.draw()

		case <-ticker.Chan():
			h.draw()
		}
	}
}

// HandleEvent applies one terminal event, returns false on quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.session.Dispatch(CommandFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.log.Debug().Int("width", w).Int("height", ht).Msg("resize")
		h.screen.Sync()
	}
	return true
}

func (h *Host) draw() {
	h.renderer.RenderFrame(h.screen, h.session.Frame())
	h.screen.Show()
}
