package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChristosPoulios/Hangman/internal/store"
)

const testPassword = "correct horse"

func newTestServer(t *testing.T, seed ...string) (*Server, store.Store) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	st := store.NewMemoryStore(seed)
	return New(st, Options{
		JWTSecret:         "test-secret",
		JWTTTL:            time.Hour,
		AdminPasswordHash: string(hash),
	}), st
}

func do(t *testing.T, s *Server, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, s *Server) string {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"`+testPassword+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d body=%s", rec.Code, rec.Body)
	}
	var res loginRes
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Token == "" {
		t.Fatal("empty token")
	}
	return res.Token
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Fatalf("health = %d %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/nope", "", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Fatalf("404 = %d %s", rec.Code, rec.Body)
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodOptions, "/words", "", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestListWords(t *testing.T) {
	s, _ := newTestServer(t, "Haus", "Baum")
	rec := do(t, s, http.MethodGet, "/words", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res listRes
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 || !slices.Equal(res.Words, []string{"haus", "baum"}) {
		t.Fatalf("res = %+v", res)
	}
}

func TestListWordsEmptyIsArray(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/words", "", "")
	if !strings.Contains(rec.Body.String(), `"words":[]`) {
		t.Fatalf("body = %s", rec.Body)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"nope"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	rec = do(t, s, http.MethodPost, "/auth/login", `not json`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json status = %d", rec.Code)
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	s := New(store.NewMemoryStore(nil), Options{JWTSecret: "x"})
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"anything"}`, "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLoginSetsCookie(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"`+testPassword+`"}`, "")
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}

	// The cookie alone authenticates.
	req := httptest.NewRequest(http.MethodPost, "/words", strings.NewReader(`{"word":"Apfel"}`))
	req.AddCookie(cookies[0])
	out := httptest.NewRecorder()
	s.Handler().ServeHTTP(out, req)
	if out.Code != http.StatusCreated {
		t.Fatalf("add with cookie status = %d %s", out.Code, out.Body)
	}
}

func TestWritesRequireAuth(t *testing.T) {
	s, st := newTestServer(t, "haus")

	tests := []struct {
		name, method, path, body, token string
	}{
		{"add without token", http.MethodPost, "/words", `{"word":"apfel"}`, ""},
		{"delete without token", http.MethodDelete, "/words/haus", "", ""},
		{"add with garbage token", http.MethodPost, "/words", `{"word":"apfel"}`, "garbage"},
	}
	for _, tc := range tests {
		rec := do(t, s, tc.method, tc.path, tc.body, tc.token)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", tc.name, rec.Code)
		}
	}
	got, _ := st.Words(context.Background())
	if !slices.Equal(got, []string{"haus"}) {
		t.Fatalf("store changed without auth: %v", got)
	}
}

func TestRejectsTokenWithOtherSecret(t *testing.T) {
	s, _ := newTestServer(t)
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("other-secret"))
	rec := do(t, s, http.MethodPost, "/words", `{"word":"apfel"}`, tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRejectsExpiredToken(t *testing.T) {
	s, _ := newTestServer(t)
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("test-secret"))
	rec := do(t, s, http.MethodPost, "/words", `{"word":"apfel"}`, tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAddAndRemoveWords(t *testing.T) {
	s, st := newTestServer(t, "haus")
	tok := login(t, s)

	rec := do(t, s, http.MethodPost, "/words", `{"word":" Kühlschrank "}`, tok)
	if rec.Code != http.StatusCreated || !strings.Contains(rec.Body.String(), `"kühlschrank"`) {
		t.Fatalf("add = %d %s", rec.Code, rec.Body)
	}
	rec = do(t, s, http.MethodPost, "/words", `{"word":"   "}`, tok)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank add = %d", rec.Code)
	}

	rec = do(t, s, http.MethodDelete, "/words/k%C3%BChlschrank", "", tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d %s", rec.Code, rec.Body)
	}
	rec = do(t, s, http.MethodDelete, "/words/apfel", "", tok)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete missing = %d", rec.Code)
	}

	got, _ := st.Words(context.Background())
	if !slices.Equal(got, []string{"haus"}) {
		t.Fatalf("words = %v", got)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/auth/logout", "", "")
	cookies := rec.Result().Cookies()
	if rec.Code != http.StatusOK || len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("logout = %d cookies=%+v", rec.Code, cookies)
	}
}
