// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create rounds with the first letter pre-revealed and MaxLives lives.
//   - Apply letter and whole-word guesses.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Index 0 of the target is shown from the start and is never re-scanned
//     by a letter guess, so guessing only the first letter counts as a miss.
//   - Nothing stops a caller from guessing after the round has ended; callers
//     check Finished() first. Lives never drop below zero either way.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"unicode"

	"github.com/ChristosPoulios/Hangman/internal/words"
)

const (
	// MaxLives is the number of mistakes allowed per round.
	MaxLives = 10

	// Placeholder marks a hidden position in the mask.
	Placeholder = '_'
)

// ErrInvalidWord is returned when a round is started with a blank word.
var ErrInvalidWord = errors.New("game: word must not be blank")

// New constructs a round for word.
func New(word string) (*Game, error) {
	g := &Game{}
	if err := g.Init(word); err != nil {
		return nil, err
	}
	return g, nil
}

// Init resets g to a fresh round for word.
// The word is trimmed and lowercased; a blank word yields ErrInvalidWord and
// leaves g untouched.
func (g *Game) Init(word string) error {
	w := words.Normalize(word)
	if w == "" {
		return ErrInvalidWord
	}
	g.ID = randomID()
	g.target = []rune(w)
	g.reveal = make([]rune, len(g.target))
	g.reveal[0] = g.target[0]
	for i := 1; i < len(g.reveal); i++ {
		g.reveal[i] = Placeholder
	}
	g.lives = MaxLives
	g.guessed = nil
	g.won, g.over = false, false
	return nil
}

// GuessLetter applies a single-letter guess.
//
// A letter guessed before returns OutcomeRepeat and changes nothing.
// Otherwise every matching position from index 1 onward is revealed; when
// none matched a life is lost.
func (g *Game) GuessLetter(letter rune) Outcome {
	letter = unicode.ToLower(letter)
	if g.HasGuessed(letter) {
		return OutcomeRepeat
	}
	g.guessed = append(g.guessed, letter)

	found := false
	for i := 1; i < len(g.target); i++ {
		if g.target[i] == letter {
			g.reveal[i] = letter
			found = true
		}
	}
	if !found {
		g.loseLife()
	}
	g.checkState()

	if found {
		return OutcomeHit
	}
	return OutcomeMiss
}

// GuessWord applies a whole-word guess.
// A correct guess wins the round without costing a life; anything else,
// including a guess of the wrong length, costs one.
func (g *Game) GuessWord(word string) Outcome {
	if words.Normalize(word) == string(g.target) {
		copy(g.reveal, g.target)
		g.won = true
		return OutcomeHit
	}
	g.loseLife()
	g.checkState()
	return OutcomeMiss
}

// Apply dispatches m to GuessWord or GuessLetter.
func (g *Game) Apply(m Move) Outcome {
	if m.IsWord() {
		return g.GuessWord(m.Word)
	}
	return g.GuessLetter(m.Letter)
}

// ParseMove turns raw player input into a move.
// One character is a letter guess, anything longer a word guess. Blank input
// is not a move.
func ParseMove(input string) (Move, bool) {
	in := words.Normalize(input)
	switch r := []rune(in); len(r) {
	case 0:
		return Move{}, false
	case 1:
		return Move{Letter: r[0]}, true
	default:
		return Move{Word: in}, true
	}
}

func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
}

// checkState re-evaluates both terminal flags; both may flip in one step.
func (g *Game) checkState() {
	if g.lives <= 0 {
		g.over = true
	}
	if string(g.reveal) == string(g.target) {
		g.won = true
	}
}

// HasGuessed reports whether letter was already guessed this round.
func (g *Game) HasGuessed(letter rune) bool {
	letter = unicode.ToLower(letter)
	for _, r := range g.guessed {
		if r == letter {
			return true
		}
	}
	return false
}

// Mask returns the current reveal mask, e.g. "h_u_".
func (g *Game) Mask() string { return string(g.reveal) }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Guessed returns a copy of the guessed letters in guess order.
func (g *Game) Guessed() []rune {
	out := make([]rune, len(g.guessed))
	copy(out, g.guessed)
	return out
}

// Target returns the hidden word.
func (g *Game) Target() string { return string(g.target) }

// Won reports whether the whole word has been revealed.
func (g *Game) Won() bool { return g.won }

// Over reports whether all lives are used up.
func (g *Game) Over() bool { return g.over }

// Finished reports whether the round reached a terminal state.
func (g *Game) Finished() bool { return g.won || g.over }

// Status reports a coarse string representation of the round.
// A won round reports "won" even if the same move used the last life.
func (g *Game) Status() string {
	switch {
	case g.won:
		return "won"
	case g.over:
		return "lost"
	default:
		return "playing"
	}
}

// Snapshot copies the observable state of the round.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mask:    g.Mask(),
		Lives:   g.lives,
		Guessed: g.Guessed(),
		Won:     g.won,
		Over:    g.over,
	}
	if g.Finished() {
		s.Target = g.Target()
	}
	return s
}

// GuessedString joins guessed letters with ", " for display.
func (s Snapshot) GuessedString() string {
	parts := make([]string, len(s.Guessed))
	for i, r := range s.Guessed {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
