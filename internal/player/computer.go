package player

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChristosPoulios/Hangman/internal/game"
	"github.com/ChristosPoulios/Hangman/internal/solver"
)

// Computer plays with the solver.
//
// Policy per move:
//   - exactly one candidate left → guess that word;
//   - no untried letters left → guess a word anyway;
//   - last life and any candidate left → guess a word;
//   - otherwise → the solver's next letter.
type Computer struct {
	guesser  *solver.Guesser
	delay    time.Duration
	lastWord string
}

// NewComputer wraps g. delay paces moves so a watching person can follow;
// zero disables it.
func NewComputer(g *solver.Guesser, delay time.Duration) *Computer {
	return &Computer{guesser: g, delay: delay}
}

func (c *Computer) Name() string { return "computer" }

func (c *Computer) Begin() {
	c.guesser.Reset()
	c.lastWord = ""
}

func (c *Computer) Next(ctx context.Context, s game.Snapshot) (game.Move, error) {
	if err := c.wait(ctx); err != nil {
		return game.Move{}, err
	}
	for _, r := range s.Guessed {
		c.guesser.Discard(r)
	}

	n := len(c.guesser.Candidates())
	if n == 1 || !c.guesser.HasMoreLetters() || (s.Lives <= 1 && n > 0) {
		if w := c.guesser.WordGuess(s.Mask); w != "" {
			c.lastWord = w
			log.Debug().Str("word", w).Int("candidates", n).Msg("computer guesses word")
			return game.Move{Word: w}, nil
		}
	}
	r := c.guesser.NextLetter()
	log.Debug().Str("letter", string(r)).Int("candidates", n).Msg("computer guesses letter")
	return game.Move{Letter: r}, nil
}

// Observe narrows the candidate pool. A rejected word guess is dropped from
// the pool so it is not tried again.
func (c *Computer) Observe(s game.Snapshot) {
	if c.lastWord != "" && !s.Won {
		c.guesser.Exclude(c.lastWord)
	}
	c.lastWord = ""
	c.guesser.Update(s.Mask, s.Guessed)
}

func (c *Computer) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
