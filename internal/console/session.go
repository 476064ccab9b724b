// internal/console/session.go
//
// Console orchestration: picks the word and the guesser, plays rounds, and
// asks whether to continue. All game logic lives in the game, solver and
// player packages; this file only wires them to text input and output.

package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChristosPoulios/Hangman/internal/game"
	"github.com/ChristosPoulios/Hangman/internal/player"
	"github.com/ChristosPoulios/Hangman/internal/solver"
	"github.com/ChristosPoulios/Hangman/internal/words"
)

// Options configures a Session.
type Options struct {
	Vocabulary *words.List
	Rand       *rand.Rand
	DailySalt  string
	AutoDelay  time.Duration
	Now        func() time.Time // defaults to time.Now
}

// Session plays rounds on a text terminal.
type Session struct {
	in       *bufio.Reader
	view     *View
	vocab    *words.List
	rng      *rand.Rand
	salt     string
	now      func() time.Time
	human    *player.Human
	computer *player.Computer
}

// NewSession reads input from in and writes output to out.
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	s := &Session{
		in:    bufio.NewReader(in),
		view:  NewView(out),
		vocab: opts.Vocabulary,
		rng:   opts.Rand,
		salt:  opts.DailySalt,
		now:   opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.human = player.NewHuman(s.in, s.view.PromptGuess)
	s.computer = player.NewComputer(solver.New(s.vocab.All(), s.rng), opts.AutoDelay)
	return s
}

// Run plays rounds until the player declines another one or input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.view.Welcome()
		target, err := s.chooseWord()
		if err != nil {
			return ignoreEOF(err)
		}
		p, err := s.choosePlayer()
		if err != nil {
			return ignoreEOF(err)
		}
		if _, err := s.PlayRound(ctx, target, p); err != nil {
			return ignoreEOF(err)
		}

		again, err := s.askPlayAgain()
		if err != nil {
			return ignoreEOF(err)
		}
		if !again {
			s.view.Goodbye()
			return nil
		}
	}
}

// PlayRound plays target to the end with p and returns the final snapshot.
func (s *Session) PlayRound(ctx context.Context, target string, p player.Player) (game.Snapshot, error) {
	g, err := game.New(target)
	if err != nil {
		return game.Snapshot{}, err
	}
	logger := log.With().Str("round", g.ID).Str("player", p.Name()).Logger()
	logger.Info().Int("length", len([]rune(g.Target()))).Msg("round started")

	p.Begin()
	p.Observe(g.Snapshot())
	for !g.Finished() {
		snap := g.Snapshot()
		s.view.State(snap)

		m, err := p.Next(ctx, snap)
		if err != nil {
			logger.Warn().Err(err).Msg("round aborted")
			return snap, err
		}
		if p != player.Player(s.human) {
			s.view.Move(p.Name(), m)
		}
		out := g.Apply(m)
		logger.Debug().Str("move", m.String()).Str("outcome", string(out)).Int("lives", g.Lives()).Msg("move")
		s.view.Outcome(out)
		p.Observe(g.Snapshot())
	}

	final := g.Snapshot()
	s.view.Result(final)
	logger.Info().Str("status", g.Status()).Int("lives", g.Lives()).Msg("round finished")
	return final, nil
}

func (s *Session) readLine() (string, error) {
	line, err := player.ReadLine(s.in)
	return strings.TrimSpace(line), err
}

func (s *Session) chooseWord() (string, error) {
	for {
		s.view.PromptMode()
		choice, err := s.readLine()
		if err != nil {
			return "", err
		}
		switch choice {
		case "1":
			return s.readOwnWord()
		case "2":
			return s.vocab.Random(s.rng), nil
		case "3":
			return s.vocab.Daily(s.now(), s.salt), nil
		default:
			s.view.InvalidMode()
		}
	}
}

// readOwnWord re-prompts until a word the game accepts is entered.
func (s *Session) readOwnWord() (string, error) {
	for {
		s.view.PromptWord()
		w, err := s.readLine()
		if err != nil {
			return "", err
		}
		if words.Normalize(w) != "" {
			return w, nil
		}
		s.view.InvalidWord()
	}
}

func (s *Session) choosePlayer() (player.Player, error) {
	for {
		s.view.PromptPlayer()
		choice, err := s.readLine()
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(choice) {
		case "h", "human":
			return s.human, nil
		case "c", "computer":
			return s.computer, nil
		default:
			s.view.InvalidPlayer()
		}
	}
}

func (s *Session) askPlayAgain() (bool, error) {
	s.view.PromptPlayAgain()
	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "j"), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
