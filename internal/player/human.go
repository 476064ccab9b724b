package player

import (
	"bufio"
	"context"
	"io"

	"github.com/ChristosPoulios/Hangman/internal/game"
)

// Human reads moves typed by a person.
type Human struct {
	in     *bufio.Reader
	prompt func()
}

// NewHuman reads moves from r. prompt, if set, is called before every read.
// Passing the *bufio.Reader the caller already reads from shares its buffer.
func NewHuman(r io.Reader, prompt func()) *Human {
	return &Human{in: bufio.NewReader(r), prompt: prompt}
}

func (h *Human) Name() string { return "human" }

func (h *Human) Begin() {}

// Next blocks until a non-blank line is read. One character is a letter
// guess, anything longer a word guess.
func (h *Human) Next(ctx context.Context, _ game.Snapshot) (game.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, err
		}
		if h.prompt != nil {
			h.prompt()
		}
		line, err := ReadLine(h.in)
		if err != nil {
			return game.Move{}, err
		}
		if m, ok := game.ParseMove(line); ok {
			return m, nil
		}
	}
}

func (h *Human) Observe(game.Snapshot) {}
