package session

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newSession(t *testing.T, store *storage.Store) *Session {
	t.Helper()
	return New(99, store, log.New(io.Discard))
}

// playUntilScore cycles through the four directions until something merges.
func playUntilScore(t *testing.T, s *Session) {
	t.Helper()
	dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := 0; i < 400 && s.Snapshot().Score == 0; i++ {
		s.Apply(dirs[i%len(dirs)])
	}
	if s.Snapshot().Score == 0 {
		t.Fatal("no merge after 400 moves")
	}
}

// playUntilLost plays until the game ends.
func playUntilLost(t *testing.T, s *Session) {
	t.Helper()
	dirs := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp}
	for i := 0; i < 100000 && s.Snapshot().Status != game.StatusLost; i++ {
		s.Apply(dirs[i%len(dirs)])
	}
	if s.Snapshot().Status != game.StatusLost {
		t.Fatal("game did not end")
	}
}

func countResults(t *testing.T, store *storage.Store) []storage.Result {
	t.Helper()
	results, err := store.TopScores(100)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	return results
}

func TestLossIsRecordedOnce(t *testing.T) {
	store := openStore(t)
	s := newSession(t, store)

	playUntilLost(t, s)
	score := s.Snapshot().Score

	// Moves after the loss and the final quit must not add rows.
	s.Apply(core.ActionLeft)
	s.Apply(core.ActionQuit)

	results := countResults(t, store)
	if len(results) != 1 {
		t.Fatalf("expected 1 recorded game, got %d", len(results))
	}
	if results[0].Score != score || results[0].Moves != s.Snapshot().Moves {
		t.Errorf("recorded %+v, expected score %d", results[0], score)
	}
}

func TestAbandonedGamesAreRecorded(t *testing.T) {
	store := openStore(t)
	s := newSession(t, store)

	playUntilScore(t, s)
	s.Apply(core.ActionRetry)
	playUntilScore(t, s)
	s.Apply(core.ActionQuit)

	if got := len(countResults(t, store)); got != 2 {
		t.Errorf("expected 2 recorded games, got %d", got)
	}
}

func TestEmptyGamesAreNotRecorded(t *testing.T) {
	store := openStore(t)
	s := newSession(t, store)

	s.Apply(core.ActionRetry)
	s.Apply(core.ActionHelp)
	s.Apply(core.ActionQuit)

	if got := len(countResults(t, store)); got != 0 {
		t.Errorf("expected no recorded games, got %d", got)
	}
}

func TestBestScoreFollowsLedger(t *testing.T) {
	store := openStore(t)
	store.SaveResult(storage.Result{Score: 777})

	s := newSession(t, store)
	if got := s.Snapshot().Best; got != 777 {
		t.Errorf("Best = %d, expected 777", got)
	}
}

func TestNilStore(t *testing.T) {
	s := New(1, nil, nil)
	playUntilScore(t, s)
	if ev := s.Apply(core.ActionQuit); !ev.Quit {
		t.Error("expected a quit event")
	}
}
