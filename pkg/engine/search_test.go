package engine

import (
	"context"
	"testing"
	"time"

	"rondo/pkg/chess"
	material "rondo/pkg/eval/material"
	pesto "rondo/pkg/eval/pesto"
)

func newMaterialEngine() *Engine {
	var e = NewEngine(func() Evaluator { return material.NewEvaluationService() })
	e.Hash = 1
	return e
}

func newPestoEngine() *Engine {
	var e = NewEngine(func() Evaluator { return pesto.NewEvaluationService() })
	e.Hash = 4
	return e
}

func searchFEN(t *testing.T, e *Engine, fen string, limits LimitsType) SearchInfo {
	t.Helper()
	var p, err = chess.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	var info, searchErr = e.Search(context.Background(), SearchParams{
		Positions: []chess.Position{p},
		Limits:    limits,
	})
	if searchErr != nil {
		t.Fatal(searchErr)
	}
	return info
}

func TestSearchMateInOne(t *testing.T) {
	var e = newPestoEngine()
	var info = searchFEN(t, e, "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1", LimitsType{Depth: 3})
	if info.Score.Mate != 1 {
		t.Fatalf("score = %+v, want mate in 1", info.Score)
	}
	if len(info.MainLine) == 0 || info.MainLine[0].String() != "d1d8" {
		t.Errorf("main line %v, want d1d8", info.MainLine)
	}
}

func TestSearchMateInTwo(t *testing.T) {
	var e = newPestoEngine()
	var info = searchFEN(t, e, "k7/8/2K5/8/8/8/8/7Q w - - 0 1", LimitsType{Depth: 5})
	if info.Score.Mate != 2 {
		t.Fatalf("score = %+v, want mate in 2", info.Score)
	}
}

func TestSearchNoLegalMoves(t *testing.T) {
	var tests = []string{
		// Stalemate.
		"k7/8/1Q6/8/8/8/8/K7 b - - 0 1",
		// Checkmate.
		"k7/1Q6/1K6/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range tests {
		var p, err = chess.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var e = newMaterialEngine()
		if _, searchErr := e.Search(context.Background(), SearchParams{
			Positions: []chess.Position{p},
			Limits:    LimitsType{Depth: 3},
		}); searchErr != errNoLegalMoves {
			t.Errorf("fen %q: error = %v, want %v", fen, searchErr, errNoLegalMoves)
		}
	}
}

// Cancelling the context mid-search must return promptly with a playable
// move, no matter how deep the threads are.
func TestSearchCancellation(t *testing.T) {
	var e = newPestoEngine()
	e.Threads = 2
	var p, err = chess.NewPositionFromFEN(chess.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	var ctx, cancel = context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	var start = time.Now()
	var info, searchErr = e.Search(ctx, SearchParams{
		Positions: []chess.Position{p},
		Limits:    LimitsType{Infinite: true},
	})
	if searchErr != nil {
		t.Fatal(searchErr)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("search returned after %v", elapsed)
	}
	if len(info.MainLine) == 0 {
		t.Fatal("no best move after cancellation")
	}
	var legal = chess.GenerateLegalMoves(&p)
	if findMoveIndex(legal, info.MainLine[0]) < 0 {
		t.Errorf("best move %v not legal", info.MainLine[0])
	}
}

func TestSearchNodeLimit(t *testing.T) {
	const budget = 5000
	var e = newPestoEngine()
	var info = searchFEN(t, e, chess.InitialPositionFEN, LimitsType{Nodes: budget})
	if info.Nodes == 0 {
		t.Fatal("no nodes searched")
	}
	// The limit is only checked every 256 nodes per thread.
	if info.Nodes > budget+2048 {
		t.Errorf("searched %v nodes, budget %v", info.Nodes, budget)
	}
}

func TestSearchDepthLimit(t *testing.T) {
	var e = newPestoEngine()
	var info = searchFEN(t, e, chess.InitialPositionFEN, LimitsType{Depth: 4})
	if info.Depth != 4 {
		t.Errorf("depth = %v, want 4", info.Depth)
	}
}

func TestSearchDeterministicSingleThread(t *testing.T) {
	var fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	var first = searchFEN(t, newPestoEngine(), fen, LimitsType{Depth: 6})
	var second = searchFEN(t, newPestoEngine(), fen, LimitsType{Depth: 6})
	if first.Score != second.Score || first.MainLine[0] != second.MainLine[0] {
		t.Errorf("results differ: %+v %v vs %+v %v",
			first.Score, first.MainLine[0], second.Score, second.MainLine[0])
	}
}

// refSearch is a plain fixed-depth negamax over the full move list with the
// same terminal rules and the same quiescence as the real search. With every
// feature flag off, the real search must return exactly this value.
func refSearch(t *thread, depth, height int) int {
	var pos = &t.stack[height].position
	if height > 0 {
		if t.isRepeat(height) {
			return valueDraw
		}
		if isDraw(pos) {
			return valueDraw
		}
	}
	if depth <= 0 {
		return t.quiescence(-valueInfinity, valueInfinity, height)
	}
	var buffer [chess.MaxMoves]chess.Move
	var best = -valueInfinity
	var hasLegalMove = false
	for _, move := range chess.GenerateMoves(buffer[:0], pos) {
		if !t.MakeMove(move, height) {
			continue
		}
		hasLegalMove = true
		best = max(best, -refSearch(t, depth-1, height+1))
	}
	if !hasLegalMove {
		if pos.IsCheck() {
			return lossIn(height)
		}
		return valueDraw
	}
	return best
}

func TestSearchMatchesReferenceNegamax(t *testing.T) {
	var fens = []string{
		chess.InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		var p, err = chess.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}

		var e = newMaterialEngine()
		e.Options = Options{} // alpha-beta and quiescence only
		var info, searchErr = e.Search(context.Background(), SearchParams{
			Positions: []chess.Position{p},
			Limits:    LimitsType{Depth: 3},
		})
		if searchErr != nil {
			t.Fatal(searchErr)
		}

		var ref = newMaterialEngine()
		ref.Options = Options{}
		ref.Prepare()
		ref.timeManager = newSimpleTimeManager(context.Background(), time.Now(),
			LimitsType{Infinite: true}, &p)
		ref.historyKeys = map[uint64]int{}
		var rt = &ref.threads[0]
		rt.stack[0].position = p
		var want = refSearch(rt, 3, 0)

		if info.Score != newUciScore(want) {
			t.Errorf("fen %q: score %+v, reference %+v", fen, info.Score, newUciScore(want))
		}

		// The root entry, when exact, must carry the true fixed-depth score.
		if ttDepth, ttScore, ttBound, _, ok := e.transTable.Read(p.Key); ok &&
			ttDepth == 3 && ttBound == boundExact {
			if valueFromTT(ttScore, 0) != want {
				t.Errorf("fen %q: exact entry score %v, reference %v",
					fen, valueFromTT(ttScore, 0), want)
			}
		}
	}
}

func TestSearchMultiThreaded(t *testing.T) {
	if testing.Short() {
		t.Skip("multithreaded search in short mode")
	}
	var e = newPestoEngine()
	e.Threads = 4
	var p, err = chess.NewPositionFromFEN(chess.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	var info, searchErr = e.Search(context.Background(), SearchParams{
		Positions: []chess.Position{p},
		Limits:    LimitsType{Depth: 6},
	})
	if searchErr != nil {
		t.Fatal(searchErr)
	}
	if info.Depth < 6 {
		t.Errorf("depth = %v, want at least 6", info.Depth)
	}
	var legal = chess.GenerateLegalMoves(&p)
	if len(info.MainLine) == 0 || findMoveIndex(legal, info.MainLine[0]) < 0 {
		t.Errorf("best move %v not legal", info.MainLine)
	}

	// On a forced tactic every thread must agree with the single-threaded
	// answer.
	e = newPestoEngine()
	e.Threads = 4
	info = searchFEN(t, e, "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1", LimitsType{Depth: 6})
	if info.Score.Mate != 1 || len(info.MainLine) == 0 || info.MainLine[0].String() != "d1d8" {
		t.Errorf("got %+v %v, want mate in 1 by d1d8", info.Score, info.MainLine)
	}
}
