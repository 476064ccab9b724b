package words

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Haus", "haus"},
		{"  KÜHLSCHRANK ", "kühlschrank"},
		{"Schlüssel", "schlüssel"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewListDedupesAndDropsBlanks(t *testing.T) {
	l, err := NewList([]string{"Haus", "", "haus", "  Baum ", "\t"})
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	got := l.All()
	if len(got) != 2 || got[0] != "haus" || got[1] != "baum" {
		t.Fatalf("All() = %v, want [haus baum]", got)
	}
	if !l.Contains("HAUS") {
		t.Error("Contains should normalize its input")
	}
}

func TestNewListEmpty(t *testing.T) {
	if _, err := NewList([]string{" ", ""}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	l, _ := NewList([]string{"haus", "baum"})
	got := l.All()
	got[0] = "xxxx"
	if l.All()[0] != "haus" {
		t.Fatal("mutating All() result changed the list")
	}
}

func TestDefault(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if l.Len() != 25 {
		t.Fatalf("Len = %d, want 25", l.Len())
	}
	for _, w := range []string{"haus", "kühlschrank", "schokolade"} {
		if !l.Contains(w) {
			t.Errorf("default list missing %q", w)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	data := "# comment\nApfel\n\nBirne\napfel\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (%v)", l.Len(), l.All())
	}
}

func TestLoadFileOnlyComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestRandomDrawsFromList(t *testing.T) {
	l, _ := NewList([]string{"haus", "baum", "auto"})
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		if w := l.Random(rng); !l.Contains(w) {
			t.Fatalf("Random returned %q", w)
		}
	}
}

func TestDailyStableWithinDay(t *testing.T) {
	l, _ := Default()
	morning := time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
	if a, b := l.Daily(morning, "s"), l.Daily(evening, "s"); a != b {
		t.Fatalf("Daily differs within a day: %q vs %q", a, b)
	}
}
