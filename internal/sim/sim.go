// Package sim plays headless games with a random policy. It backs the
// `term2048 sim` command and exercises the engine on long runs.
package sim

import (
	"context"
	"math/rand/v2"
	"sort"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/game"
)

var moves = [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Options configures a batch of playouts.
type Options struct {
	Games    int
	Seed     int64         // game i uses Seed+i; 0 = time based
	MaxMoves int           // per game; 0 = until the game is lost
	Start    *engine.Board // start position instead of two random tiles
}

// Result is the outcome of one playout.
type Result struct {
	Score   uint64
	MaxTile uint32
	Moves   int
	Reached bool
	Lost    bool
}

// Summary aggregates a batch.
type Summary struct {
	Games     int
	BestScore uint64
	AvgScore  float64
	AvgMoves  float64
	Reached   int
	MaxTiles  map[uint32]int // final max tile -> games
}

// TileCounts returns the MaxTiles histogram sorted by tile value.
func (s Summary) TileCounts() [][2]uint64 {
	out := make([][2]uint64, 0, len(s.MaxTiles))
	for tile, n := range s.MaxTiles {
		out = append(out, [2]uint64{uint64(tile), uint64(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// Play runs one game, choosing uniformly among the moves that change the
// board. policy supplies those choices; the game draws spawns from its own
// source.
func Play(g *game.Game, policy engine.Source, maxMoves int) Result {
	for maxMoves <= 0 || g.Snapshot().Moves < maxMoves {
		if g.Status() == game.StatusLost {
			break
		}

		b := g.Board()
		legal := make([]core.Action, 0, len(moves))
		for _, a := range moves {
			dir, _ := a.Direction()
			if engine.CanSlide(b, dir) {
				legal = append(legal, a)
			}
		}
		if len(legal) == 0 {
			break
		}
		g.Step(legal[policy.IntN(len(legal))])
	}

	snap := g.Snapshot()
	return Result{
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Reached: snap.Reached,
		Lost:    snap.Status == game.StatusLost,
	}
}

// Run plays opts.Games games and summarizes them. It stops early, with the
// games finished so far, when ctx is cancelled.
func Run(ctx context.Context, opts Options) (Summary, error) {
	sum := Summary{MaxTiles: make(map[uint32]int)}
	var totalScore, totalMoves uint64

	for i := range opts.Games {
		if err := ctx.Err(); err != nil {
			finish(&sum, totalScore, totalMoves)
			return sum, err
		}

		g, policy := newGame(opts, i)
		r := Play(g, policy, opts.MaxMoves)

		sum.Games++
		totalScore += r.Score
		totalMoves += uint64(r.Moves)
		sum.BestScore = max(sum.BestScore, r.Score)
		sum.MaxTiles[r.MaxTile]++
		if r.Reached {
			sum.Reached++
		}
	}

	finish(&sum, totalScore, totalMoves)
	return sum, nil
}

// newGame builds game i of a batch and its move policy. A non-zero seed
// makes the pair depend only on Seed and i.
func newGame(opts Options, i int) (*game.Game, engine.Source) {
	var rng, policy engine.Source
	if opts.Seed != 0 {
		seed := uint64(opts.Seed) + uint64(i)
		rng = rand.New(rand.NewPCG(seed, seed>>32|0x2048))
		policy = rand.New(rand.NewPCG(seed, uint64(i)))
	} else {
		rng = game.NewSource(0)
		policy = game.NewSource(0)
	}

	if opts.Start != nil {
		return game.NewFromBoard(rng, *opts.Start), policy
	}
	return game.New(rng), policy
}

func finish(sum *Summary, totalScore, totalMoves uint64) {
	if sum.Games == 0 {
		return
	}
	sum.AvgScore = float64(totalScore) / float64(sum.Games)
	sum.AvgMoves = float64(totalMoves) / float64(sum.Games)
}
