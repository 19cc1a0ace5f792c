// Package quiz implements the round/session state machine of the flag quiz:
// category selection, round drawing, scoring and game-over transitions.
//
// The engine performs no I/O and holds no global state. A rendering layer
// forwards input as Events, advances time with Tick and draws Snapshot.
package quiz

import "fmt"

// Default rule values.
const (
	BaseRoundScore    = 5    // Points for a round answered without mistakes
	MaxOptions        = 4    // Options shown per round
	HighlightDuration = 1000 // Correct-answer highlight, simulation ms
	SplashDuration    = 5000 // Title screen on first start, simulation ms
	TimeStep          = 0.1  // Animation time added per tick
)

// DistractorScope selects where wrong options come from.
type DistractorScope string

const (
	// ScopeCategory draws distractors from the session's category pool.
	ScopeCategory DistractorScope = "category"
	// ScopeGlobal draws distractors from the whole catalog.
	ScopeGlobal DistractorScope = "global"
)

// Rules are the tunable parameters of a session.
type Rules struct {
	BaseRoundScore  int
	OptionCount     int
	HighlightMillis int64
	SplashMillis    int64
	TimeStep        float64
	DistractorScope DistractorScope
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		BaseRoundScore:  BaseRoundScore,
		OptionCount:     MaxOptions,
		HighlightMillis: HighlightDuration,
		SplashMillis:    SplashDuration,
		TimeStep:        TimeStep,
		DistractorScope: ScopeCategory,
	}
}

// Validate reports rule values the engine cannot work with.
func (r Rules) Validate() error {
	if r.BaseRoundScore < 1 {
		return fmt.Errorf("base round score must be positive, got %d", r.BaseRoundScore)
	}
	if r.OptionCount < 1 {
		return fmt.Errorf("option count must be positive, got %d", r.OptionCount)
	}
	if r.HighlightMillis < 0 || r.SplashMillis < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	switch r.DistractorScope {
	case ScopeCategory, ScopeGlobal:
	default:
		return fmt.Errorf("unknown distractor scope %q", r.DistractorScope)
	}
	return nil
}

// withDefaults replaces unusable values with defaults so that the engine
// never has to fail.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.BaseRoundScore < 1 {
		r.BaseRoundScore = d.BaseRoundScore
	}
	if r.OptionCount < 1 {
		r.OptionCount = d.OptionCount
	}
	if r.HighlightMillis < 0 {
		r.HighlightMillis = d.HighlightMillis
	}
	if r.SplashMillis < 0 {
		r.SplashMillis = d.SplashMillis
	}
	if r.TimeStep <= 0 {
		r.TimeStep = d.TimeStep
	}
	if r.DistractorScope != ScopeGlobal {
		r.DistractorScope = ScopeCategory
	}
	return r
}
