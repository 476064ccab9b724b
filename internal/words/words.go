// internal/words/words.go
//
// Provides vocabulary management for the game and the solver.
//
// Responsibilities:
//   - Normalize words and guesses (trim + Unicode lowercase).
//   - Build immutable word lists (deduplicated, blanks dropped).
//   - Load lists from files or fall back to the embedded default.
//   - Supply RandomWord and the deterministic word of the day.
//
// Constraints:
//   • Every word in a List is non-empty and lowercase.
//   • The embedded default is parsed once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ChristosPoulios/Hangman/assets"
	"github.com/ChristosPoulios/Hangman/internal/daily"
)

// ErrEmpty is returned when a word list ends up without any usable word.
var ErrEmpty = errors.New("words: list is empty")

// Normalize trims s and lowercases it.
// German letters are handled (e.g. "KÜHLSCHRANK" → "kühlschrank").
func Normalize(s string) string {
	return cases.Lower(language.German).String(strings.TrimSpace(s))
}

// List is an immutable vocabulary.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList normalizes ws into a List, keeping first-seen order.
// Returns ErrEmpty if nothing usable remains.
func NewList(ws []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		w = Normalize(w)
		if w == "" {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// Default returns the embedded vocabulary.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		ws, err := assets.WordList()
		if err != nil {
			defaultErr = fmt.Errorf("read embedded words: %w", err)
			return
		}
		defaultList, defaultErr = NewList(ws)
	})
	return defaultList, defaultErr
}

// LoadFile reads one word per line from path.
// Blank lines and lines starting with '#' are skipped.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ws []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ws = append(ws, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	l, err := NewList(ws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// All returns a copy of the words in list order.
func (l *List) All() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w (after normalization) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[Normalize(w)]
	return ok
}

// Random returns a uniformly chosen word using rng.
func (l *List) Random(rng *rand.Rand) string {
	return l.words[rng.IntN(len(l.words))]
}

// Daily returns the word of the day for t's UTC date.
// The same date and salt always yield the same word.
func (l *List) Daily(t time.Time, salt string) string {
	return l.words[daily.WordIndex(t, salt, len(l.words))]
}
