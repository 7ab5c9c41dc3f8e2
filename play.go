// play.go
//
// Line-oriented terminal front-end for the guessing engine.
// Responsibilities:
//   - Difficulty menu (skipped when a tier is preset by flag or env).
//   - Guess prompt loop, printing the engine's feedback verbatim.
//   - End-of-round summary (time taken, score) and the play-again prompt.
//
// All game rules live in internal/game; this file only reads input,
// calls Start/SubmitGuess/Reset and prints what comes back.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/robalobadob/numguess/internal/game"
)

// player drives one Engine from a line reader.
type player struct {
	eng    *game.Engine
	in     *bufio.Scanner
	out    io.Writer
	pr     *message.Printer
	clock  func() time.Time
	preset game.Difficulty // empty means show the menu
}

func newPlayer(eng *game.Engine, r io.Reader, w io.Writer, pr *message.Printer) *player {
	return &player{
		eng:   eng,
		in:    bufio.NewScanner(r),
		out:   w,
		pr:    pr,
		clock: time.Now,
	}
}

// run plays rounds until the player declines another or input ends.
func (p *player) run() error {
	p.say("\n=== Welcome to the Number Guessing Game! ===")
	for {
		if err := p.round(); err != nil {
			return p.finish(err)
		}
		answer, err := p.prompt("\nWould you like to play again? (yes/no): ")
		if err != nil {
			return p.finish(err)
		}
		p.eng.Reset()
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "yes" && a != "y" {
			p.say("\nThanks for playing! Goodbye!")
			return nil
		}
	}
}

// finish turns end of input into a clean exit.
func (p *player) finish(err error) error {
	if errors.Is(err, io.EOF) {
		p.eng.Reset()
		p.say("\nGoodbye!")
		return nil
	}
	return err
}

// round plays one session to a win or loss.
func (p *player) round() error {
	d, err := p.chooseDifficulty()
	if err != nil {
		return err
	}
	snap, err := p.eng.Start(d)
	if err != nil {
		return err
	}

	cfg := snap.Config
	p.printf("\nI'm thinking of a number between %d and %d.\n", cfg.Min, cfg.Max)
	p.printf("You have %d attempts to guess it!\n", cfg.Attempts)
	p.say("Hint: The closer you get, the more precise the hints will be!")

	for snap.State == game.StatePlaying {
		elapsed := p.eng.CurrentElapsed(p.clock())
		p.printf("\nAttempts left: %d  [%s]\n", snap.AttemptsRemaining, game.FormatElapsed(elapsed))
		line, err := p.prompt("Enter your guess: ")
		if err != nil {
			return err
		}
		res, err := p.eng.SubmitGuess(line)
		if err != nil && !errors.Is(err, game.ErrOutOfRange) {
			return err
		}
		p.say(res.Feedback)
		snap = res.Snapshot
	}

	if snap.State == game.StateWon {
		p.printf("Time taken: %s (%.2f seconds)\n", game.FormatElapsed(snap.TimeTaken), snap.TimeTaken.Seconds())
		p.printf("Score: %d points\n", snap.Score)
	}
	return nil
}

func (p *player) chooseDifficulty() (game.Difficulty, error) {
	if p.preset != "" {
		return p.preset, nil
	}
	tiers := game.Difficulties()
	for {
		p.say("\nSelect difficulty level:")
		for i, d := range tiers {
			cfg, _ := d.Config()
			p.printf("%d. %s (%d-%d, %d attempts)\n", i+1, cfg.Label, cfg.Min, cfg.Max, cfg.Attempts)
		}
		line, err := p.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(tiers)))
		if err != nil {
			return "", err
		}
		if d, ok := pickDifficulty(line, tiers); ok {
			return d, nil
		}
		p.say("Invalid choice! Please select 1, 2, or 3.")
	}
}

// pickDifficulty accepts a 1-based menu number or a tier name.
func pickDifficulty(s string, tiers []game.Difficulty) (game.Difficulty, bool) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 || n > len(tiers) {
			return "", false
		}
		return tiers[n-1], true
	}
	d, err := game.ParseDifficulty(s)
	return d, err == nil
}

// prompt prints text and reads one line. io.EOF when input is exhausted.
func (p *player) prompt(text string) (string, error) {
	fmt.Fprint(p.out, text)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *player) say(s string) { fmt.Fprintln(p.out, s) }

func (p *player) printf(format string, args ...any) { p.pr.Fprintf(p.out, format, args...) }
