// internal/console/view.go
//
// Text rendering for the console game. The view only reads snapshots; it
// never touches game state.

package console

import (
	"fmt"
	"io"

	"github.com/ChristosPoulios/Hangman/internal/game"
)

// gallows holds one drawing per life lost, starting with none.
var gallows = [...]string{
	"",
	"\n\n\n\n\n____",
	"\n |\n |\n |\n |\n_|___",
	" ______\n |\n |\n |\n |\n_|___",
	" ______\n |    |\n |\n |\n |\n_|___",
	" ______\n |    |\n |    O\n |\n |\n_|___",
	" ______\n |    |\n |    O\n |    |\n |\n_|___",
	" ______\n |    |\n |    O\n |   /|\n |\n_|___",
	" ______\n |    |\n |    O\n |   /|\\\n |\n_|___",
	" ______\n |    |\n |    O\n |   /|\\\n |   /\n_|___",
}

const hanged = " ______\n |    |\n |    O\n |   /|\\\n |   / \\\n_|___\nRIP"

// View writes game output to an io.Writer.
type View struct {
	w io.Writer
}

// NewView returns a View writing to w.
func NewView(w io.Writer) *View { return &View{w: w} }

func (v *View) println(a ...any) { _, _ = fmt.Fprintln(v.w, a...) }

func (v *View) Welcome() { v.println("Welcome to Hangman!") }

func (v *View) PromptMode() {
	v.println("Choose where the word comes from:")
	v.println("1) Enter your own word")
	v.println("2) Random word")
	v.println("3) Word of the day")
	v.println("Enter 1, 2 or 3:")
}

func (v *View) InvalidMode() { v.println("Invalid choice! Please enter 1, 2 or 3.") }

func (v *View) PromptWord() { v.println("Enter the word to guess:") }

func (v *View) InvalidWord() { v.println("The word must not be empty.") }

func (v *View) PromptPlayer() { v.println("Who guesses? (h)uman or (c)omputer:") }

func (v *View) InvalidPlayer() { v.println("Invalid choice! Please enter h or c.") }

func (v *View) PromptGuess() { v.println("Guess a letter or enter the whole word:") }

// Gallows draws the stage for the given remaining lives.
func (v *View) Gallows(lives int) {
	i := game.MaxLives - lives
	i = min(max(i, 0), len(gallows)-1)
	v.println(gallows[i])
}

// State renders the mask, lives and guessed letters.
func (v *View) State(s game.Snapshot) {
	v.println()
	v.Gallows(s.Lives)
	v.println()
	v.println("Word:", s.Mask)
	v.println("Lives left:", s.Lives)
	v.println("Guessed:", "["+s.GuessedString()+"]")
}

// Move announces a move made by a non-human player.
func (v *View) Move(name string, m game.Move) {
	v.println(fmt.Sprintf("%s guesses: %s", name, m))
}

// Outcome reports the result of the last move.
func (v *View) Outcome(o game.Outcome) {
	switch o {
	case game.OutcomeHit:
		v.println("Correct!")
	case game.OutcomeMiss:
		v.println("Wrong! You lose a life.")
	case game.OutcomeRepeat:
		v.println("You already guessed that letter!")
	}
}

// Result reports the end of a round. A lost round reveals the target.
func (v *View) Result(s game.Snapshot) {
	switch {
	case s.Won:
		v.println("Congratulations! The word was " + s.Target + ".")
	case s.Over:
		v.println(hanged)
		v.println("Game over! You are out of lives. The word was: " + s.Target)
	}
}

func (v *View) PromptPlayAgain() { v.println("Play again? (y/n)") }

func (v *View) Goodbye() { v.println("Bye!") }
