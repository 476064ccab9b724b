// internal/player/player.go
//
// Guess sources for a round.
// A Player proposes moves from what it can observe (the Snapshot) and is told
// the result after every move. The game engine never needs to know whether a
// person or the solver is on the other side.

package player

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ChristosPoulios/Hangman/internal/game"
)

// Player proposes moves for a round.
type Player interface {
	// Name identifies the player in logs and output.
	Name() string

	// Begin prepares for a new round.
	Begin()

	// Next returns the next move given the current snapshot.
	Next(ctx context.Context, s game.Snapshot) (game.Move, error)

	// Observe is called with the snapshot after each move (and once before
	// the first move).
	Observe(s game.Snapshot)
}

// ReadLine reads one line from r without the trailing newline.
// A last line without newline is returned with a nil error; io.EOF is only
// returned when nothing was read.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
