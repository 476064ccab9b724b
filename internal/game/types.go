// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Outcome: result of a single move (hit/miss/repeat).
//   - Move: a letter or whole-word guess.
//   - Snapshot: read-only copy of a round handed to players and views.
//   - Game: state for a single in-progress or finished round.

package game

// Outcome represents the evaluation result of a move.
// Possible values:
//   - "hit":    at least one position was revealed (or the word was right).
//   - "miss":   nothing was revealed; one life was lost.
//   - "repeat": the letter had already been guessed; nothing changed.
type Outcome string

const (
	OutcomeHit    Outcome = "hit"
	OutcomeMiss   Outcome = "miss"
	OutcomeRepeat Outcome = "repeat"
)

// Move is a single guess. Exactly one of Letter or Word is set.
type Move struct {
	Letter rune
	Word   string
}

// IsWord reports whether the move is a whole-word guess.
func (m Move) IsWord() bool { return m.Word != "" }

// String renders the move the way a player would have typed it.
func (m Move) String() string {
	if m.IsWord() {
		return m.Word
	}
	return string(m.Letter)
}

// Snapshot is a copy of the observable state of a round.
// Target is only populated once the round has finished.
type Snapshot struct {
	Mask    string
	Lives   int
	Guessed []rune
	Won     bool
	Over    bool
	Target  string
}

// Finished reports whether the snapshot was taken after the round ended.
func (s Snapshot) Finished() bool { return s.Won || s.Over }

// Game holds the state of a single hangman round.
type Game struct {
	ID      string // Unique round identifier (random hex string).
	target  []rune // The hidden word (always lowercase).
	reveal  []rune // Same length as target; Placeholder where still hidden.
	lives   int    // Remaining lives, never negative.
	guessed []rune // Guessed letters in insertion order, unique.
	won     bool   // True once reveal equals target.
	over    bool   // True once lives reached zero.
}
