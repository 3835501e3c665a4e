package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"rondo/pkg/chess"
)

// errSearchTimeout unwinds a thread out of an arbitrarily deep search once
// the time manager reports done. It never escapes iterativeDeepening.
var errSearchTimeout = errors.New("search timeout")

var errNoLegalMoves = errors.New("no legal moves")

// lazySmp runs one iterative deepening loop per thread. The threads share
// only the transposition table and the accumulated main line; each starts
// from a rotated root move list so they spread over different lines.
func lazySmp(e *Engine) error {
	var ml = e.genRootMoves()
	if len(ml) == 0 {
		return errNoLegalMoves
	}
	// A best move exists before any worker starts, so cancellation at any
	// point still yields a playable result.
	e.mainLine = mainLine{
		depth: 0,
		score: 0,
		moves: []chess.Move{ml[0]},
	}
	if len(ml) == 1 {
		return nil
	}

	var g errgroup.Group
	var healthy int32
	for i := range e.threads {
		var t = &e.threads[i]
		var moves = cloneMoves(ml)
		rotateMoves(moves, i)
		g.Go(func() error {
			var err = t.iterativeDeepening(moves)
			if err == nil {
				atomic.AddInt32(&healthy, 1)
			}
			return err
		})
	}
	// A crashed worker is tolerated as long as any worker delivered; only a
	// total loss is escalated.
	if err := g.Wait(); err != nil && atomic.LoadInt32(&healthy) == 0 {
		return err
	}
	return nil
}

func (t *thread) iterativeDeepening(ml []chess.Move) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				return
			}
			err = fmt.Errorf("search panic: %v", r)
		}
	}()

	for h := 0; h <= 2; h++ {
		t.stack[h].killer1 = chess.MoveEmpty
		t.stack[h].killer2 = chess.MoveEmpty
	}

	var e = t.engine
	var prevScore = 0
	for depth := 1; depth <= maxHeight; depth++ {
		if e.timeManager.IsDone() {
			break
		}
		var score = aspirationWindow(t, ml, depth, prevScore)
		var bestMove, bestScore = e.onIterationComplete(t, depth, score)
		prevScore = bestScore
		if index := findMoveIndex(ml, bestMove); index >= 0 {
			moveToBegin(ml, index)
		}
	}
	return nil
}
