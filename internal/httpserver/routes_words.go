// internal/httpserver/routes_words.go
//
// HTTP routes for the vocabulary under /words:
//   - GET    /words         → list all words
//   - POST   /words         → add a word (admin)
//   - DELETE /words/{word}  → remove a word (admin)
//
// Changes apply to the store; a running console session keeps the list it
// loaded at start-up.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ChristosPoulios/Hangman/internal/store"
	"github.com/ChristosPoulios/Hangman/internal/words"
)

// mountWords registers all /words routes.
func (s *Server) mountWords(r chi.Router) {
	r.Route("/words", func(r chi.Router) {
		r.Get("/", s.handleListWords)
		r.With(s.requireAuth).Post("/", s.handleAddWord)
		r.With(s.requireAuth).Delete("/{word}", s.handleRemoveWord)
	})
}

// listRes is returned by GET /words.
type listRes struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	ws, err := s.store.Words(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list words")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if ws == nil {
		ws = []string{}
	}
	writeJSON(w, http.StatusOK, listRes{Count: len(ws), Words: ws})
}

// addReq is the request payload for POST /words.
type addReq struct {
	Word string `json:"word"`
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var body addReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	err := s.store.Add(r.Context(), body.Word)
	switch {
	case errors.Is(err, store.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	case err != nil:
		log.Error().Err(err).Msg("add word")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	word := words.Normalize(body.Word)
	log.Info().Str("word", word).Msg("word added")
	writeJSON(w, http.StatusCreated, addReq{Word: word})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if u, err := url.PathUnescape(word); err == nil {
		word = u
	}
	err := s.store.Remove(r.Context(), word)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		log.Error().Err(err).Msg("remove word")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	log.Info().Str("word", words.Normalize(word)).Msg("word removed")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
