package scores

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func TestAddAndTop(t *testing.T) {
	s, _ := openTestStore(t)

	for _, e := range []struct {
		name  string
		score int
	}{
		{"alice", 1200},
		{"bob", 4400},
		{"carol", 300},
	} {
		if _, err := s.Add(e.name, e.score, 2); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	top, err := s.Top(2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].Name != "BOB" || top[0].Score != 4400 {
		t.Fatalf("first = %+v, want BOB 4400", top[0])
	}
	if top[1].Name != "ALICE" {
		t.Fatalf("second = %+v, want ALICE", top[1])
	}
	if top[0].ID == "" || top[0].ID == top[1].ID {
		t.Fatal("entries need distinct ids")
	}
}

func TestHighScore(t *testing.T) {
	s, _ := openTestStore(t)

	high, err := s.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Fatalf("empty high score = %d, want 0", high)
	}

	if _, err := s.Add("dan", 7700, 3); err != nil {
		t.Fatalf("Add: %v", err)
	}
	high, err = s.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 7700 {
		t.Fatalf("high score = %d, want 7700", high)
	}
}

func TestSanitizeName(t *testing.T) {
	s, _ := openTestStore(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "   ", want: "???"},
		{name: "upper", in: "pac man", want: "PAC MAN"},
		{name: "truncated", in: "averylongplayername", want: "AVERYLONGP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := s.Add(tt.in, 10, 1)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if e.Name != tt.want {
				t.Fatalf("name = %q, want %q", e.Name, tt.want)
			}
		})
	}
}

func TestLegacyImport(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "scores")
	body := "GHOST:9000\n4500\n\nnot-a-score\n"
	if err := os.WriteFile(legacy, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	top, err := s.Top(10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("imported %d entries, want 2", len(top))
	}
	if top[0].Name != "GHOST" || top[0].Score != 9000 {
		t.Fatalf("first = %+v, want GHOST 9000", top[0])
	}
	if top[1].Name != "???" || top[1].Score != 4500 {
		t.Fatalf("second = %+v, want anonymous 4500", top[1])
	}

	if _, err := os.Stat(legacy); !os.IsNotExist(err) {
		t.Fatal("legacy file still present after import")
	}
	if _, err := os.Stat(legacy + ".imported"); err != nil {
		t.Fatalf("renamed legacy file missing: %v", err)
	}

	// Reopening must not import again.
	s.Close()
	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	top, err = s2.Top(10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("reopen imported again: %d entries", len(top))
	}
}
