// Package game runs one 2048 session on top of the board engine: it turns
// actions into slides, spawns, score updates and end-of-game checks, and
// draws the session into a core.Screen.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// Status is the session state as seen by a frontend.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
)

// Banner selects the message shown in the info panel.
type Banner int

const (
	BannerControls    Banner = iota
	BannerWin                // shown once, on the turn 2048 first appears
	BannerKeepPlaying        // every later turn of the same game
	BannerLost
)

// Event describes what a single Step did.
type Event struct {
	Action  core.Action
	Moved   bool   // the slide changed the board
	Delta   uint32 // score gained by merges
	Spawned *engine.Tile
	Reached bool // 2048 appeared for the first time this game
	Lost    bool // no legal move remains
	Retried bool
	Quit    bool
}

// Game holds one board, its score and the sticky win flag.
type Game struct {
	rng engine.Source

	board    engine.Board
	score    uint64
	moves    int
	reached  bool
	status   Status
	banner   Banner
	showHelp bool
	best     uint64
}

// NewSource returns a PCG generator for seed. A zero seed uses the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|0x2048))
}

// New creates a game drawing randomness from rng and places the two
// starting tiles.
func New(rng engine.Source) *Game {
	g := &Game{rng: rng, showHelp: true}
	g.Reset()
	return g
}

// NewFromBoard creates a game that starts from b instead of two random
// tiles. The score starts at zero.
func NewFromBoard(rng engine.Source, b engine.Board) *Game {
	g := &Game{rng: rng, showHelp: true, board: b}
	g.settle(&Event{})
	return g
}

// Reset discards the board and score and starts a new game.
func (g *Game) Reset() {
	g.board = engine.Board{}
	g.score = 0
	g.moves = 0
	g.reached = false
	g.status = StatusPlaying
	g.banner = BannerControls

	engine.Spawn(&g.board, g.rng)
	engine.Spawn(&g.board, g.rng)
}

// Step applies one action. Moves spawn a tile only when they changed the
// board. A lost game accepts only Retry, Quit and Help.
func (g *Game) Step(a core.Action) Event {
	ev := Event{Action: a}

	switch a {
	case core.ActionQuit:
		ev.Quit = true
		return ev
	case core.ActionRetry:
		g.Reset()
		ev.Retried = true
		return ev
	case core.ActionHelp:
		g.showHelp = !g.showHelp
		return ev
	}

	if g.status == StatusLost {
		return ev
	}

	dir, ok := a.Direction()
	if !ok {
		return ev
	}

	before := g.board
	ev.Delta = engine.Slide(&g.board, dir)
	g.score += uint64(ev.Delta)

	if g.board != before {
		ev.Moved = true
		g.moves++
		if tile, spawned := engine.Spawn(&g.board, g.rng); spawned {
			ev.Spawned = &tile
		}
	}

	g.settle(&ev)
	return ev
}

// settle runs the end-of-turn checks: loss first, then the one-time
// threshold notification. A 2048 made on the losing move still counts as
// reached, but the lost banner wins.
func (g *Game) settle(ev *Event) {
	first := !g.reached && engine.HasReachedThreshold(g.board)
	if first {
		g.reached = true
		ev.Reached = true
	}

	switch {
	case engine.IsTerminal(g.board):
		g.status = StatusLost
		g.banner = BannerLost
		ev.Lost = true
	case first:
		g.banner = BannerWin
	case g.reached:
		g.banner = BannerKeepPlaying
	}
}

// Board returns a copy of the grid.
func (g *Game) Board() engine.Board {
	return g.board
}

// Score returns the current score.
func (g *Game) Score() uint64 {
	return g.score
}

// Status returns whether the game is still running.
func (g *Game) Status() Status {
	return g.status
}

// SetBest sets the best recorded score shown next to the current one.
func (g *Game) SetBest(best uint64) {
	g.best = best
}
