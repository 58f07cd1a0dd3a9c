// Package app hosts one microwave session: it owns the countdown controller, the clock, sounds,
// the dialog and the trace, and turns user commands into controller calls.
package app

import (
	"errors"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/microwave/audio"
	"github.com/lixenwraith/microwave/constants"
	"github.com/lixenwraith/microwave/render"
	"github.com/lixenwraith/microwave/timer"
	"github.com/lixenwraith/microwave/trace"
	"github.com/rs/zerolog"
)

// Player is the sound surface the session drives
type Player interface {
	Play(audio.SoundType) bool
	StartHum()
	StopHum()
	ToggleMute() bool
	IsMuted() bool
}

// Options configures a new session
type Options struct {
	PresetsMs []int64 // ascending, non-empty
	DefaultMs int64   // must be one of PresetsMs, otherwise the first preset is armed
	Clock     clockwork.Clock
	Player    Player        // nil plays nothing
	Trace     *trace.Writer // nil disables tracing
	Logger    *zerolog.Logger // nil discards
}

// Session is a single-owner host for one countdown
// It is not safe for concurrent use
type Session struct {
	ctrl  *timer.Controller
	clock clockwork.Clock
	epoch time.Time

	presets []int64
	index   int

	dialog      string
	status      string
	statusError bool
	statusUntil time.Time

	spin      float64
	lastState timer.State

	player Player
	trace  *trace.Writer
	log    zerolog.Logger
}

// NewSession arms the default preset and starts the session clock
func NewSession(opts Options) *Session {
	presets := opts.PresetsMs
	if len(presets) == 0 {
		presets = constants.DefaultPresetsMs
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	player := opts.Player
	if player == nil {
		player = silentPlayer{}
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	idx := max(slices.Index(presets, opts.DefaultMs), 0)

	s := &Session{
		clock:   clock,
		epoch:   clock.Now(),
		presets: slices.Clone(presets),
		index:   idx,
		player:  player,
		trace:   opts.Trace,
		log:     logger,
	}
	s.ctrl = timer.New(s.presets[idx], s)
	s.lastState = s.ctrl.State()
	return s
}

// nowMs is the session clock in milliseconds since creation
func (s *Session) nowMs() int64 {
	return s.clock.Since(s.epoch).Milliseconds()
}

// Ding implements timer.Observer
func (s *Session) Ding() {
	s.dialog = constants.DialogDing
	s.player.Play(audio.SoundDing)
	s.log.Info().Int64("duration_ms", s.ctrl.DurationMs()).Msg("countdown finished")
}

// DoorOpened implements timer.Observer
func (s *Session) DoorOpened(snap timer.Snapshot) {
	s.dialog = DialogText(snap)
}

// DialogText is the message shown when the door is opened at snap
func DialogText(snap timer.Snapshot) string {
	switch {
	case snap.State == timer.StateEnded:
		return constants.DialogDing
	case !snap.Started():
		return constants.DialogNotStarted
	default:
		return constants.DialogTimeLeft + timer.Format(snap.RemainingMs)
	}
}

// SelectPreset arms preset i
func (s *Session) SelectPreset(i int) error {
	if i < 0 || i >= len(s.presets) {
		return s.reject("select", ErrNoSuchPreset)
	}
	if err := s.selectMs("select", s.presets[i]); err != nil {
		return err
	}
	s.index = i
	return nil
}

// StepPreset moves the preset selection by delta, clamped to the list
func (s *Session) StepPreset(delta int) error {
	i := min(max(s.index+delta, 0), len(s.presets)-1)
	if i == s.index {
		return nil
	}
	return s.SelectPreset(i)
}

// SelectDuration arms an arbitrary duration, the preset marker follows if it matches one
func (s *Session) SelectDuration(ms int64) error {
	if err := s.selectMs("select", ms); err != nil {
		return err
	}
	if i := slices.Index(s.presets, ms); i >= 0 {
		s.index = i
	}
	return nil
}

func (s *Session) selectMs(op string, ms int64) error {
	from := s.ctrl.State()
	if err := s.ctrl.Select(ms); err != nil {
		return s.reject(op, err)
	}
	s.dialog = ""
	s.accepted(op, from)
	return nil
}

// Go starts or resumes the countdown
func (s *Session) Go() error {
	from := s.ctrl.State()
	if err := s.ctrl.Start(s.nowMs()); err != nil {
		return s.reject("start", err)
	}
	if from != timer.StateRunning {
		s.spin = 0
		s.dialog = ""
	}
	s.accepted("start", from)
	return nil
}

// Open opens the door and shows the dialog for the resulting snapshot
func (s *Session) Open() timer.Snapshot {
	from := s.ctrl.State()
	snap := s.ctrl.Open(s.nowMs())
	s.accepted("open", from)
	return snap
}

// CloseDialog hides the dialog and closes the door, returns whether anything changed
func (s *Session) CloseDialog() bool {
	from := s.ctrl.State()
	moved := s.ctrl.Close()
	hidden := s.dialog != ""
	s.dialog = ""
	if !moved && !hidden {
		return false
	}
	s.accepted("close", from)
	return true
}

// ToggleMute flips sound output, returns true if sound is now enabled
func (s *Session) ToggleMute() bool {
	on := s.player.ToggleMute()
	if on {
		s.flash("sound on", false)
	} else {
		s.flash("sound off", false)
	}
	s.syncHum()
	return on
}

// Sample advances the countdown to the current clock
func (s *Session) Sample() timer.Snapshot {
	snap := s.ctrl.Sample(s.nowMs())
	if snap.State != s.lastState {
		s.record("tick", s.lastState, nil)
		s.lastState = snap.State
		s.syncHum()
	}
	return snap
}

// Frame samples the countdown and builds the view for one rendered frame
func (s *Session) Frame() render.View {
	snap := s.Sample()
	if snap.State == timer.StateRunning {
		s.spin += constants.FoodSpinStep
	}
	if s.status != "" && !s.clock.Now().Before(s.statusUntil) {
		s.status = ""
		s.statusError = false
	}

	return render.View{
		Snapshot:    snap,
		Presets:     s.presets,
		PresetIndex: s.index,
		Spin:        s.spin,
		Dialog:      s.dialog,
		Status:      s.status,
		StatusError: s.statusError,
		Muted:       s.player.IsMuted(),
	}
}

// Snapshot returns the controller state without advancing it
func (s *Session) Snapshot() timer.Snapshot { return s.ctrl.Snapshot() }

// Dialog returns the visible dialog text, empty when hidden
func (s *Session) Dialog() string { return s.dialog }

// Status returns the current status line and whether it reports a rejection
func (s *Session) Status() (string, bool) { return s.status, s.statusError }

// Presets returns the selectable durations
func (s *Session) Presets() []int64 { return slices.Clone(s.presets) }

// PresetIndex returns the selected preset
func (s *Session) PresetIndex() int { return s.index }

// accepted logs, traces and acknowledges a command that went through
func (s *Session) accepted(op string, from timer.State) {
	s.player.Play(audio.SoundBeep)
	s.record(op, from, nil)
	s.lastState = s.ctrl.State()
	s.syncHum()
}

// reject reports a refused command on the status line and passes err through
func (s *Session) reject(op string, err error) error {
	s.record(op, s.ctrl.State(), err)
	if errors.Is(err, timer.ErrInvalidTransition) {
		s.flash(op+" not allowed while "+s.ctrl.State().String(), true)
	} else {
		s.flash(err.Error(), true)
	}
	return err
}

func (s *Session) record(op string, from timer.State, err error) {
	to := s.ctrl.State()
	snap := s.ctrl.Snapshot()

	ev := s.log.Debug()
	if err != nil {
		ev = s.log.Warn().Err(err)
	}
	ev.Str("op", op).
		Str("from", from.String()).
		Str("to", to.String()).
		Int64("remaining_ms", snap.RemainingMs).
		Msg("command")

	if s.trace == nil {
		return
	}
	rec := trace.Record{
		AtMs:        s.nowMs(),
		Op:          op,
		From:        from.String(),
		To:          to.String(),
		RemainingMs: snap.RemainingMs,
	}
	if err != nil {
		rec.Err = err.Error()
	}
	if werr := s.trace.Write(rec); werr != nil {
		s.log.Warn().Err(werr).Msg("trace write failed")
	}
}

func (s *Session) flash(msg string, isErr bool) {
	s.status = msg
	s.statusError = isErr
	s.statusUntil = s.clock.Now().Add(constants.StatusMessageTimeout)
}

// syncHum keeps the drone running exactly while the countdown runs
func (s *Session) syncHum() {
	if s.ctrl.State() == timer.StateRunning {
		s.player.StartHum()
	} else {
		s.player.StopHum()
	}
}

// silentPlayer is used when no audio backend is available
type silentPlayer struct{}

func (silentPlayer) Play(audio.SoundType) bool { return false }
func (silentPlayer) StartHum()                 {}
func (silentPlayer) StopHum()                  {}
func (silentPlayer) ToggleMute() bool          { return false }
func (silentPlayer) IsMuted() bool             { return true }
