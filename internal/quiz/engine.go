package quiz

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
	"github.com/vovakirdan/flag-quiz/internal/core"
)

// Outcome is the result of a guess.
type Outcome int

const (
	OutcomeIgnored         Outcome = iota // Stale or out-of-range input
	OutcomeCorrect                        // Target picked; highlight window started
	OutcomeIncorrect                      // Wrong option; disabled and penalised
	OutcomeAlreadyDisabled                // Option was already ruled out this round
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeAlreadyDisabled:
		return "already_disabled"
	default:
		return "ignored"
	}
}

// Round is one target-plus-options presentation.
type Round struct {
	Target       string   // Identifier of the correct answer
	Options      []string // Distinct identifiers, Target included
	HighlightEnd int64    // Clock value at which the correct highlight ends
}

// Session is one playthrough from start to game over.
type Session struct {
	Score    int
	MaxScore int

	Time  float64 // Animation time
	Clock int64   // Simulation milliseconds since session start

	Category string
	Pool     []catalog.Item // Items of Category, deduplicated
	Shown    map[string]bool

	RoundScore int          // Points the current round is still worth
	Disabled   map[int]bool // Option indices ruled out this round
	Correct    int          // Index of the correctly guessed option, -1 if none

	Round       *Round
	RoundNumber int
	Previous    string // Target of the last finished round

	Terminal    bool
	ConfirmExit bool
	Splash      bool
	SplashEnd   int64
}

// Engine owns the current session and the randomness behind it.
// It is not safe for concurrent use; the platform drives it from one loop.
type Engine struct {
	rules    Rules
	selector CategorySelector
	rng      *rand.Rand
	pool     []catalog.Item
	session  *Session
	quit     bool
}

// NewEngine creates an engine over the given items. Duplicate identifiers are
// dropped. No session is started; call StartSession.
func NewEngine(items []catalog.Item, selector CategorySelector, rules Rules, seed int64) *Engine {
	if selector == nil {
		selector = ByContinent{}
	}

	seen := make(map[string]bool, len(items))
	pool := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		pool = append(pool, it)
	}

	return &Engine{
		rules:    rules.withDefaults(),
		selector: selector,
		rng:      rand.New(rand.NewSource(seed)),
		pool:     pool,
	}
}

// Rules returns the effective rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Selector returns the category selector.
func (e *Engine) Selector() CategorySelector {
	return e.selector
}

// Session returns the current session, or nil before the first start.
func (e *Engine) Session() *Session {
	return e.session
}

// Categories returns the distinct non-empty categories of the pool, sorted.
func (e *Engine) Categories() []string {
	set := make(map[string]bool)
	for _, it := range e.pool {
		if c := e.selector.Category(it); c != "" {
			set[c] = true
		}
	}

	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// StartSession replaces the current session with a fresh one: it picks a
// category at random, filters the pool, resets score and timers and draws
// the first round. With no categorized items the session is terminal at once.
func (e *Engine) StartSession(splash bool) *Session {
	category, pool := e.chooseCategory()

	s := &Session{
		MaxScore:   len(pool) * e.rules.BaseRoundScore,
		Category:   category,
		Pool:       pool,
		Shown:      make(map[string]bool, len(pool)),
		RoundScore: e.rules.BaseRoundScore,
		Disabled:   make(map[int]bool),
		Correct:    -1,
	}
	if splash && e.rules.SplashMillis > 0 {
		s.Splash = true
		s.SplashEnd = e.rules.SplashMillis
	}

	e.session = s
	e.quit = false

	round, ok := e.DrawRound()
	if !ok {
		s.Terminal = true
		return s
	}
	s.Round = round
	return s
}

// chooseCategory picks a category uniformly and returns its items.
func (e *Engine) chooseCategory() (string, []catalog.Item) {
	categories := e.Categories()
	if len(categories) == 0 {
		return "", nil
	}

	category := categories[e.rng.Intn(len(categories))]
	var pool []catalog.Item
	for _, it := range e.pool {
		if e.selector.Category(it) == category {
			pool = append(pool, it)
		}
	}
	return category, pool
}

// DrawRound picks an unseen target from the session pool, marks it shown and
// builds its options. It returns false once every item has been shown.
func (e *Engine) DrawRound() (*Round, bool) {
	s := e.session
	if s == nil {
		return nil, false
	}

	available := make([]catalog.Item, 0, len(s.Pool))
	for _, it := range s.Pool {
		if !s.Shown[it.ID] {
			available = append(available, it)
		}
	}
	if len(available) == 0 {
		return nil, false
	}

	target := available[e.rng.Intn(len(available))]
	s.Shown[target.ID] = true
	s.RoundNumber++

	return &Round{
		Target:  target.ID,
		Options: e.buildOptions(target.ID),
	}, true
}

// buildOptions returns the shuffled options for target. Small pools are shown
// whole; otherwise distractors are drawn without replacement.
func (e *Engine) buildOptions(target string) []string {
	s := e.session
	n := e.rules.OptionCount

	if len(s.Pool) <= n {
		options := make([]string, len(s.Pool))
		for i, it := range s.Pool {
			options[i] = it.ID
		}
		e.shuffle(options)
		return options
	}

	candidates := s.Pool
	if e.rules.DistractorScope == ScopeGlobal {
		candidates = e.pool
	}

	others := make([]string, 0, len(candidates))
	for _, it := range candidates {
		if it.ID != target {
			others = append(others, it.ID)
		}
	}

	// Partial Fisher-Yates: the first k entries become a uniform sample.
	k := core.Min(n-1, len(others))
	for i := 0; i < k; i++ {
		j := i + e.rng.Intn(len(others)-i)
		others[i], others[j] = others[j], others[i]
	}

	options := make([]string, 0, k+1)
	options = append(options, target)
	options = append(options, others[:k]...)
	e.shuffle(options)
	return options
}

func (e *Engine) shuffle(ids []string) {
	e.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// ApplyGuess scores a pick of option index in the current round.
// Input that cannot apply right now (no round, highlight running, session
// over, exit prompt or splash shown, index out of range) is ignored.
func (e *Engine) ApplyGuess(index int) Outcome {
	s := e.session
	if s == nil || s.Round == nil || s.Terminal || s.Splash || s.ConfirmExit || s.Correct >= 0 {
		return OutcomeIgnored
	}
	if index < 0 || index >= len(s.Round.Options) {
		return OutcomeIgnored
	}
	if s.Disabled[index] {
		return OutcomeAlreadyDisabled
	}

	if s.Round.Options[index] == s.Round.Target {
		s.Score += s.RoundScore
		s.Correct = index
		s.Round.HighlightEnd = s.Clock + e.rules.HighlightMillis
		return OutcomeCorrect
	}

	s.Disabled[index] = true
	s.RoundScore = 0
	s.Score--
	if s.Score < 0 {
		// Going below zero ends the game.
		s.Score = 0
		s.Terminal = true
	}
	return OutcomeIncorrect
}

// Advance moves to the next round once the correct-answer highlight has
// elapsed at now. The session ends when no unseen items remain.
func (e *Engine) Advance(now int64) {
	s := e.session
	if s == nil || s.Terminal || s.Round == nil || s.Correct < 0 {
		return
	}
	if now < s.Round.HighlightEnd {
		return
	}

	s.Previous = s.Round.Target
	s.Correct = -1
	s.Disabled = make(map[int]bool)

	round, ok := e.DrawRound()
	if !ok {
		s.Round = nil
		s.Terminal = true
		return
	}
	s.Round = round
	s.RoundScore = e.rules.BaseRoundScore
}

// Tick advances simulation time by elapsed milliseconds and one animation
// step, ends the splash when due and advances pending rounds.
func (e *Engine) Tick(elapsed int64) {
	s := e.session
	if s == nil {
		return
	}
	if elapsed > 0 {
		s.Clock += elapsed
	}
	s.Time += e.rules.TimeStep

	if s.Splash && s.Clock >= s.SplashEnd {
		s.Splash = false
	}

	e.Advance(s.Clock)
}
