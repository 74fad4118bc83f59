package game

import "github.com/vovakirdan/term2048/internal/engine"

// Snapshot is a read-only copy of the session for rendering, logging and
// score recording.
type Snapshot struct {
	Board    engine.Board
	Score    uint64
	Best     uint64
	Moves    int
	MaxTile  uint32
	Reached  bool
	Status   Status
	Banner   Banner
	ShowHelp bool
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:    g.board,
		Score:    g.score,
		Best:     max(g.best, g.score),
		Moves:    g.moves,
		MaxTile:  engine.MaxTile(g.board),
		Reached:  g.reached,
		Status:   g.status,
		Banner:   g.banner,
		ShowHelp: g.showHelp,
	}
}
