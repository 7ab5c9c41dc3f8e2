// internal/game/engine.go
//
// Core game engine for a single number guessing session.
// Responsibilities:
//   - Start sessions for a difficulty tier with a uniformly drawn target.
//   - Validate and apply guesses (integer, inside the tier's range).
//   - Emit directional hints and compute the score on a win.
//   - Track state transitions: menu → playing → won/lost → menu.
//
// Notes:
//   - One Engine owns at most one live session; Start discards the previous one.
//   - The engine never ticks by itself. Callers read CurrentElapsed at any cadence.
//   - Not safe for concurrent use; drive it from a single event loop.
package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// session holds the mutable state of one play-through.
type session struct {
	id         string
	difficulty Difficulty
	cfg        DifficultyConfig
	target     int
	remaining  int
	guesses    []int
	startedAt  time.Time
	timeTaken  time.Duration
	score      int
}

// Engine is the game state machine.
type Engine struct {
	rng      *rand.Rand
	now      func() time.Time
	log      zerolog.Logger
	state    State
	sess     *session // nil in StateMenu
	feedback string
}

// Option customises an Engine.
type Option func(*Engine)

// WithSeed makes target selection reproducible. A seed of 0 uses the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the randomness source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an engine sitting in StateMenu.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		log:   zerolog.Nop(),
		state: StateMenu,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Result is what a guess submission hands back to the caller.
type Result struct {
	Snapshot Snapshot
	Feedback string
	Hint     HintLevel
}

// Start begins a new session at difficulty d, replacing any previous one.
// Allowed from every state.
func (e *Engine) Start(d Difficulty) (Snapshot, error) {
	cfg, err := d.Config()
	if err != nil {
		return e.Snapshot(), fmt.Errorf("start %q: %w", string(d), err)
	}
	e.sess = &session{
		id:         uuid.NewString(),
		difficulty: d,
		cfg:        cfg,
		target:     cfg.Min + e.rng.Intn(cfg.Max-cfg.Min+1),
		remaining:  cfg.Attempts,
		guesses:    []int{},
		startedAt:  e.now(),
	}
	e.state = StatePlaying
	e.feedback = ""

	e.log.Debug().
		Str("session", e.sess.id).
		Str("difficulty", d.String()).
		Int("min", cfg.Min).
		Int("max", cfg.Max).
		Int("attempts", cfg.Attempts).
		Msg("game started")
	e.log.Trace().Str("session", e.sess.id).Int("target", e.sess.target).Msg("target drawn")
	return e.Snapshot(), nil
}

// SubmitGuess parses raw as a base-10 integer and applies it.
//
// Text that is not an integer, or an integer outside the tier's range,
// yields a *GuessError (errors.Is ErrOutOfRange) and leaves the session
// untouched. Outside StatePlaying ErrNotPlaying is returned. In both error
// cases Result still carries the current snapshot.
func (e *Engine) SubmitGuess(raw string) (Result, error) {
	if e.state != StatePlaying {
		return e.rejectNotPlaying()
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return e.rejectInput(raw)
	}
	return e.apply(n, raw)
}

// Guess applies an already numeric guess. Same rules as SubmitGuess.
func (e *Engine) Guess(n int) (Result, error) {
	if e.state != StatePlaying {
		return e.rejectNotPlaying()
	}
	return e.apply(n, strconv.Itoa(n))
}

// apply validates the range and runs the transition for one guess.
//
// State transitions:
//   - guess == target → StateWon, score computed from this instant.
//   - otherwise one attempt is consumed; at zero → StateLost, else a hint.
func (e *Engine) apply(n int, raw string) (Result, error) {
	s := e.sess
	if !s.cfg.Contains(n) {
		return e.rejectInput(raw)
	}

	s.guesses = append(s.guesses, n)
	log := e.log.With().Str("session", s.id).Int("guess", n).Int("attempt", len(s.guesses)).Logger()

	if n == s.target {
		s.timeTaken = Elapsed(e.now(), s.startedAt)
		s.score = Score(s.cfg, len(s.guesses), s.timeTaken)
		e.state = StateWon
		e.feedback = fmt.Sprintf("Congratulations! You found the number %d!", s.target)
		log.Info().
			Dur("timeTaken", s.timeTaken).
			Int("score", s.score).
			Msg("game won")
		return Result{Snapshot: e.Snapshot(), Feedback: e.feedback}, nil
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.timeTaken = Elapsed(e.now(), s.startedAt)
		e.state = StateLost
		e.feedback = fmt.Sprintf("Game Over! The number was %d.", s.target)
		log.Info().Dur("timeTaken", s.timeTaken).Int("target", s.target).Msg("game lost")
		return Result{Snapshot: e.Snapshot(), Feedback: e.feedback}, nil
	}

	level, msg := Hint(s.cfg, n, s.target)
	e.feedback = msg
	log.Debug().Stringer("hint", level).Int("remaining", s.remaining).Msg("wrong guess")
	return Result{Snapshot: e.Snapshot(), Feedback: msg, Hint: level}, nil
}

func (e *Engine) rejectInput(raw string) (Result, error) {
	gerr := &GuessError{Input: raw, Min: e.sess.cfg.Min, Max: e.sess.cfg.Max}
	e.log.Debug().Str("session", e.sess.id).Str("input", raw).Msg("guess rejected")
	return Result{Snapshot: e.Snapshot(), Feedback: gerr.Feedback()}, gerr
}

func (e *Engine) rejectNotPlaying() (Result, error) {
	e.log.Debug().Str("state", string(e.state)).Msg("guess while not playing")
	return Result{Snapshot: e.Snapshot()}, ErrNotPlaying
}

// Reset discards the current session and returns to StateMenu.
func (e *Engine) Reset() Snapshot {
	if e.sess != nil {
		e.log.Debug().Str("session", e.sess.id).Str("from", string(e.state)).Msg("game reset")
	}
	e.sess = nil
	e.state = StateMenu
	e.feedback = ""
	return e.Snapshot()
}

// State reports the current lifecycle state.
func (e *Engine) State() State { return e.state }

// CurrentElapsed reports the session clock at now: live while playing,
// frozen at the final guess once won or lost, zero in the menu.
func (e *Engine) CurrentElapsed(now time.Time) time.Duration {
	switch {
	case e.sess == nil:
		return 0
	case e.state.Finished():
		return e.sess.timeTaken
	default:
		return Elapsed(now, e.sess.startedAt)
	}
}

// Snapshot copies the current session out of the engine.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{State: e.state, Feedback: e.feedback, Guesses: []int{}}
	s := e.sess
	if s == nil {
		return snap
	}
	snap.ID = s.id
	snap.Difficulty = s.difficulty
	snap.Config = s.cfg
	snap.AttemptsRemaining = s.remaining
	snap.Guesses = append(snap.Guesses, s.guesses...)
	snap.StartedAt = s.startedAt
	if e.state.Finished() {
		snap.TimeTaken = s.timeTaken
		snap.Target = s.target
	}
	if e.state == StateWon {
		snap.Score = s.score
	}
	return snap
}
