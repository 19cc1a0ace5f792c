package quiz

import "github.com/vovakirdan/flag-quiz/internal/catalog"

// Mode is the top-level state of the engine.
type Mode string

const (
	ModeSplash      Mode = "splash"
	ModePlaying     Mode = "playing"
	ModeExitConfirm Mode = "exit_confirm"
	ModeGameOver    Mode = "game_over"
	ModeQuit        Mode = "quit"
)

// Phase is the per-round micro-state while playing.
type Phase string

const (
	PhaseAwaitingGuess Phase = "awaiting_guess"
	PhaseHighlighting  Phase = "highlighting_correct"
)

// EventKind enumerates player input the engine understands.
type EventKind int

const (
	EventGuess EventKind = iota
	EventRestart
	EventRequestExit
	EventConfirmExit
	EventCancelExit
)

// Event is one discrete player input.
type Event struct {
	Kind  EventKind
	Index int // Option index for EventGuess
}

// Guess returns a guess event for option index.
func Guess(index int) Event {
	return Event{Kind: EventGuess, Index: index}
}

// Restart, RequestExit, ConfirmExit and CancelExit are the non-guess events.
var (
	Restart     = Event{Kind: EventRestart}
	RequestExit = Event{Kind: EventRequestExit}
	ConfirmExit = Event{Kind: EventConfirmExit}
	CancelExit  = Event{Kind: EventCancelExit}
)

// Handle applies an input event and reports whether it changed anything.
// Events that do not fit the current mode are ignored.
func (e *Engine) Handle(ev Event) bool {
	s := e.session
	if e.quit {
		return false
	}
	if s == nil {
		if ev.Kind == EventRestart {
			e.StartSession(false)
			return true
		}
		return false
	}
	if s.Splash {
		return false
	}

	switch ev.Kind {
	case EventGuess:
		o := e.ApplyGuess(ev.Index)
		return o == OutcomeCorrect || o == OutcomeIncorrect

	case EventRestart:
		if !s.Terminal || s.ConfirmExit {
			return false
		}
		e.StartSession(false)
		return true

	case EventRequestExit:
		if s.ConfirmExit {
			return false
		}
		if s.Terminal {
			// Nothing left to lose on the end screen.
			e.quit = true
			return true
		}
		s.ConfirmExit = true
		return true

	case EventConfirmExit:
		if !s.ConfirmExit {
			return false
		}
		e.quit = true
		return true

	case EventCancelExit:
		if !s.ConfirmExit {
			return false
		}
		s.ConfirmExit = false
		return true
	}

	return false
}

// Mode returns the current top-level state.
func (e *Engine) Mode() Mode {
	s := e.session
	switch {
	case e.quit:
		return ModeQuit
	case s == nil:
		return ModeGameOver
	case s.Splash:
		return ModeSplash
	case s.ConfirmExit:
		return ModeExitConfirm
	case s.Terminal:
		return ModeGameOver
	default:
		return ModePlaying
	}
}

// Phase returns the round micro-state.
func (e *Engine) Phase() Phase {
	if s := e.session; s != nil && s.Correct >= 0 {
		return PhaseHighlighting
	}
	return PhaseAwaitingGuess
}

// Option is one answer button as seen by the renderer.
type Option struct {
	ID          string
	Name        string
	Disabled    bool
	Highlighted bool
}

// Snapshot is the read-only view of the engine handed to the renderer.
type Snapshot struct {
	Mode  Mode
	Phase Phase

	Score    int
	MaxScore int

	Current     catalog.Item // Zero when there is no active round
	Options     []Option
	Disabled    []int
	Highlighted int // Option index being highlighted, -1 if none

	Time     float64
	Clock    int64
	Category string
	Kind     string // Selector name, e.g. "Continent"

	Round  int // 1-based number of the current round
	Rounds int // Rounds in this session
}

// Snapshot captures the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:        e.Mode(),
		Phase:       e.Phase(),
		Highlighted: -1,
		Kind:        e.selector.Name(),
	}

	s := e.session
	if s == nil {
		return snap
	}

	snap.Score = s.Score
	snap.MaxScore = s.MaxScore
	snap.Time = s.Time
	snap.Clock = s.Clock
	snap.Category = s.Category
	snap.Round = s.RoundNumber
	snap.Rounds = len(s.Pool)

	if s.Round == nil {
		return snap
	}

	snap.Current, _ = e.item(s.Round.Target)
	if s.Correct >= 0 && s.Clock < s.Round.HighlightEnd {
		snap.Highlighted = s.Correct
	}

	snap.Options = make([]Option, len(s.Round.Options))
	for i, id := range s.Round.Options {
		opt := Option{ID: id, Name: id}
		if it, ok := e.item(id); ok {
			opt.Name = it.Name
		}
		opt.Disabled = s.Disabled[i]
		opt.Highlighted = i == snap.Highlighted
		if opt.Disabled {
			snap.Disabled = append(snap.Disabled, i)
		}
		snap.Options[i] = opt
	}

	return snap
}

// item looks up an identifier in the full pool.
func (e *Engine) item(id string) (catalog.Item, bool) {
	for _, it := range e.pool {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.Item{}, false
}
