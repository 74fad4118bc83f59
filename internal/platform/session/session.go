// Package session drives a player's run of games for a frontend and keeps
// the score ledger in sync with it.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Session wraps a game with ledger bookkeeping. A game is recorded once:
// when it is lost, or when it is abandoned by Retry or Quit with a
// non-zero score.
type Session struct {
	game     *game.Game
	store    *storage.Store
	logger   *log.Logger
	recorded bool
}

// New starts a session seeded with seed (0 = time based). The store may be
// nil, which disables recording. A nil logger uses the default logger.
func New(seed int64, store *storage.Store, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		game:   game.New(game.NewSource(seed)),
		store:  store,
		logger: logger,
	}

	if store != nil {
		best, err := store.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		s.game.SetBest(best)
	}
	return s
}

// Game returns the running game.
func (s *Session) Game() *game.Game {
	return s.game
}

// Snapshot returns the state of the running game.
func (s *Session) Snapshot() game.Snapshot {
	return s.game.Snapshot()
}

// Apply feeds one action to the game.
func (s *Session) Apply(a core.Action) game.Event {
	if a == core.ActionQuit || a == core.ActionRetry {
		s.record()
	}

	ev := s.game.Step(a)
	if ev.Moved {
		s.logger.Debug("move", "dir", a, "delta", ev.Delta, "score", s.game.Score())
	}

	switch {
	case ev.Retried:
		s.recorded = false
		s.logger.Debug("new game")
	case ev.Lost:
		s.logger.Info("game over", "score", s.game.Score(), "moves", s.Snapshot().Moves)
		s.record()
	case ev.Reached:
		s.logger.Info("2048 reached", "score", s.game.Score())
	}
	return ev
}

// record writes the current game to the ledger once.
func (s *Session) record() {
	snap := s.game.Snapshot()
	if s.recorded || snap.Score == 0 {
		return
	}
	s.recorded = true

	if s.store == nil {
		return
	}
	_, err := s.store.SaveResult(storage.Result{
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Reached: snap.Reached,
	})
	if err != nil {
		s.logger.Warn("could not save score", "error", err)
		return
	}
	s.game.SetBest(snap.Best)
}
