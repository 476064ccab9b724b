// internal/solver/guesser.go
//
// Automated guessing strategy.
// Responsibilities:
//   - Propose letters: ranked common letters first, then the rest of the
//     alphabet in random order, then FallbackLetter.
//   - Narrow a candidate pool from the observed mask and guessed letters.
//   - Propose a whole word from the pool (or the full vocabulary).
//
// The guesser only ever sees what a human would see: the mask and the
// guessed letters. It owns its random source so runs can be replayed.
package solver

import (
	"math/rand/v2"
	"slices"
	"unicode/utf8"

	"github.com/ChristosPoulios/Hangman/internal/words"
)

const (
	// Alphabet is every letter the guesser may propose.
	Alphabet = "abcdefghijklmnopqrstuvwxyzäöüß"

	// Ranked holds the letters tried first, most common first.
	Ranked = "mekahczifurgdwsolnbt"

	// FallbackLetter is proposed once every letter has been tried.
	FallbackLetter = 'a'

	placeholder = '_'
)

// Guesser proposes letters and words for one round at a time.
// It is not safe for concurrent use.
type Guesser struct {
	vocabulary []string
	rng        *rand.Rand

	ranked     []rune   // untried ranked letters, in order
	remaining  []rune   // untried letters of the whole alphabet
	candidates []string // words still consistent with what was observed
}

// New returns a guesser over vocabulary, ready for a round.
// Words are normalized; blanks are dropped.
func New(vocabulary []string, rng *rand.Rand) *Guesser {
	g := &Guesser{rng: rng}
	for _, w := range vocabulary {
		if w = words.Normalize(w); w != "" {
			g.vocabulary = append(g.vocabulary, w)
		}
	}
	g.Reset()
	return g
}

// Reset restores both letter pools and the full candidate pool.
// Call it once per round before asking for guesses.
func (g *Guesser) Reset() {
	g.ranked = []rune(Ranked)
	g.remaining = []rune(Alphabet)
	g.candidates = slices.Clone(g.vocabulary)
}

// NextLetter pops the next letter to try. A letter is never proposed twice
// within a round.
func (g *Guesser) NextLetter() rune {
	if len(g.ranked) > 0 {
		r := g.ranked[0]
		g.ranked = g.ranked[1:]
		g.remaining = remove(g.remaining, r)
		return r
	}
	if len(g.remaining) > 0 {
		i := g.rng.IntN(len(g.remaining))
		r := g.remaining[i]
		g.remaining = slices.Delete(g.remaining, i, i+1)
		return r
	}
	return FallbackLetter
}

// HasMoreLetters reports whether NextLetter can still return an untried letter.
func (g *Guesser) HasMoreLetters() bool {
	return len(g.ranked) > 0 || len(g.remaining) > 0
}

// Discard removes r from both letter pools without proposing it.
func (g *Guesser) Discard(r rune) {
	g.ranked = remove(g.ranked, r)
	g.remaining = remove(g.remaining, r)
}

// Update narrows the candidate pool to words that match mask and are
// compatible with guessed.
//
// A word is compatible when it contains at least one guessed letter, or when
// nothing was guessed yet. Words containing a letter that turned out to be
// absent are not removed.
func (g *Guesser) Update(mask string, guessed []rune) {
	g.candidates = slices.DeleteFunc(g.matching(mask), func(w string) bool {
		return !compatible(w, guessed)
	})
}

// WordGuess returns a random candidate matching mask. When none is left it
// falls back to a random word of the whole vocabulary, which may be empty.
func (g *Guesser) WordGuess(mask string) string {
	if m := g.matching(mask); len(m) > 0 {
		return m[g.rng.IntN(len(m))]
	}
	if len(g.vocabulary) == 0 {
		return ""
	}
	return g.vocabulary[g.rng.IntN(len(g.vocabulary))]
}

// Exclude drops word from the candidate pool, e.g. after it was guessed and
// rejected.
func (g *Guesser) Exclude(word string) {
	word = words.Normalize(word)
	g.candidates = slices.DeleteFunc(g.candidates, func(w string) bool { return w == word })
}

// Candidates returns a copy of the current candidate pool.
func (g *Guesser) Candidates() []string {
	return slices.Clone(g.candidates)
}

// Remaining returns the number of untried letters of the alphabet.
func (g *Guesser) Remaining() int { return len(g.remaining) }

func (g *Guesser) matching(mask string) []string {
	mask = words.Normalize(mask)
	var out []string
	for _, w := range g.candidates {
		if Matches(w, mask) {
			out = append(out, w)
		}
	}
	return out
}

// Matches reports whether word fits mask position by position.
// '_' in the mask matches any letter; lengths must agree.
func Matches(word, mask string) bool {
	if utf8.RuneCountInString(word) != utf8.RuneCountInString(mask) {
		return false
	}
	wr := []rune(word)
	for i, m := range []rune(mask) {
		if m != placeholder && m != wr[i] {
			return false
		}
	}
	return true
}

func compatible(word string, guessed []rune) bool {
	if len(guessed) == 0 {
		return true
	}
	for _, w := range word {
		if slices.Contains(guessed, w) {
			return true
		}
	}
	return false
}

func remove(rs []rune, r rune) []rune {
	if i := slices.Index(rs, r); i >= 0 {
		return slices.Delete(rs, i, i+1)
	}
	return rs
}
