package store

import (
	"context"
	"fmt"

	"github.com/ChristosPoulios/Hangman/internal/words"
)

// LoadList reads the stored vocabulary into a words.List.
func LoadList(ctx context.Context, st Store) (*words.List, error) {
	ws, err := st.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	return words.NewList(ws)
}
