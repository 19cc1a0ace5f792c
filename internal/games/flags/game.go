// Package flags implements the flag quiz as a registry.Game.
// A waving flag is shown and the player picks the matching country.
package flags

import (
	"golang.org/x/text/language"

	"github.com/vovakirdan/flag-quiz/internal/core"
	"github.com/vovakirdan/flag-quiz/internal/quiz"
	"github.com/vovakirdan/flag-quiz/internal/registry"
)

// Variant identifiers.
const (
	VariantContinent = "flags"
	VariantLetter    = "flags_letter"
	VariantWorld     = "flags_world"
)

// Game adapts a quiz.Engine to the platform's Game interface.
type Game struct {
	id       string
	title    string
	deps     registry.Deps
	selector quiz.CategorySelector

	engine   *quiz.Engine
	config   core.RuntimeConfig
	started  bool // A session has been started before; only the first gets the splash
	lastMode quiz.Mode

	// Size of the last rendered screen, used for mouse hit tests.
	width, height int
}

// New creates a quiz game that groups sessions with selector.
func New(id, title string, selector quiz.CategorySelector, deps registry.Deps) *Game {
	return &Game{
		id:       id,
		title:    title,
		deps:     deps.WithDefaults(),
		selector: selector,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh engine from the seed and starts a session.
// The title splash is shown on the first reset only.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	if g.width == 0 {
		g.width, g.height = cfg.ScreenW, cfg.ScreenH
	}

	g.engine = quiz.NewEngine(g.deps.Items, g.selector, g.deps.Rules, cfg.Seed)
	g.engine.StartSession(!g.started)
	g.started = true
	g.lastMode = ""
	g.observe()
}

// Step applies this tick's input and advances the simulation clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		if g.engine.Mode() == quiz.ModeExitConfirm {
			g.engine.Handle(quiz.CancelExit)
		} else {
			g.engine.Handle(quiz.RequestExit)
		}
	}

	if in.Has(core.ActionConfirm) {
		switch g.engine.Mode() {
		case quiz.ModeExitConfirm:
			g.engine.Handle(quiz.ConfirmExit)
		case quiz.ModeGameOver:
			g.engine.Handle(quiz.Restart)
		}
	}

	if in.Has(core.ActionRestart) {
		g.engine.Handle(quiz.Restart)
	}

	if in.Has(core.ActionSelect) {
		g.guess(in.Choice)
	}

	g.engine.Tick(g.config.TickMillis())
	g.observe()

	return core.StepResult{State: g.State()}
}

func (g *Game) guess(index int) {
	if g.engine.Mode() != quiz.ModePlaying {
		return
	}
	o := g.engine.ApplyGuess(index)
	if o == quiz.OutcomeIgnored {
		return
	}

	s := g.engine.Session()
	g.deps.Logger.Debug("guess",
		"option", index,
		"outcome", o.String(),
		"score", s.Score,
	)
}

// observe logs session transitions.
func (g *Game) observe() {
	mode := g.engine.Mode()
	if mode == g.lastMode {
		return
	}
	prev := g.lastMode
	g.lastMode = mode

	s := g.engine.Session()
	switch {
	case mode == quiz.ModeSplash || (mode == quiz.ModePlaying && (prev == "" || prev == quiz.ModeGameOver)):
		g.deps.Logger.Debug("session started",
			"game", g.id,
			"category", s.Category,
			"items", len(s.Pool),
			"max_score", s.MaxScore,
		)
	case mode == quiz.ModeGameOver:
		g.deps.Logger.Debug("session over",
			"game", g.id,
			"category", s.Category,
			"score", s.Score,
			"max_score", s.MaxScore,
			"rounds", s.RoundNumber,
		)
	case mode == quiz.ModeQuit:
		g.deps.Logger.Debug("player quit", "game", g.id, "score", s.Score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}

	mode := g.engine.Mode()
	snap := g.engine.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		MaxScore: snap.MaxScore,
		GameOver: mode == quiz.ModeGameOver,
		Quit:     mode == quiz.ModeQuit,
	}
}

// Snapshot exposes the engine view for tests and tooling.
func (g *Game) Snapshot() quiz.Snapshot {
	if g.engine == nil {
		return quiz.Snapshot{Highlighted: -1}
	}
	return g.engine.Snapshot()
}

// OptionAt returns the index of the option button under screen cell (x, y),
// or core.NoChoice.
func (g *Game) OptionAt(x, y int) int {
	if g.engine == nil {
		return core.NoChoice
	}
	snap := g.engine.Snapshot()
	if snap.Mode != quiz.ModePlaying {
		return core.NoChoice
	}

	l := computeLayout(g.width, g.height, len(snap.Options))
	for i, r := range l.buttons {
		if r.Contains(x, y) {
			return i
		}
	}
	return core.NoChoice
}

// Register the variants with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          VariantContinent,
		Title:       "Flag Quiz",
		Description: "Flags of one continent per game",
	}, func(d registry.Deps) registry.Game {
		return New(VariantContinent, "Flag Quiz", quiz.ByContinent{}, d)
	})

	registry.Register(registry.GameInfo{
		ID:          VariantLetter,
		Title:       "Flag Quiz: Letters",
		Description: "Countries starting with one letter per game",
	}, func(d registry.Deps) registry.Game {
		return New(VariantLetter, "Flag Quiz: Letters", quiz.NewByInitial(language.English), d)
	})

	registry.Register(registry.GameInfo{
		ID:          VariantWorld,
		Title:       "Flag Quiz: World",
		Description: "Every flag in the catalog in one game",
	}, func(d registry.Deps) registry.Game {
		return New(VariantWorld, "Flag Quiz: World", quiz.Everything{}, d)
	})
}
