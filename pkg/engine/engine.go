package engine

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"rondo/pkg/chess"
)

type LimitsType struct {
	Ponder         bool
	Infinite       bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
}

type SearchParams struct {
	Positions []chess.Position
	Limits    LimitsType
	Progress  func(si SearchInfo)
}

type UciScore struct {
	Centipawns int
	Mate       int
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []chess.Move
}

// Evaluator scores a position from the side to move's point of view, in
// centipawns.
type Evaluator interface {
	Evaluate(p *chess.Position) int
}

type TransTable interface {
	Size() (megabytes int)
	IncGeneration()
	Clear()
	Read(key uint64) (depth, score, bound int, move chess.Move, found bool)
	Update(key uint64, depth, score, bound int, move chess.Move)
}

type timeManager interface {
	IsDone() bool
	OnNodesChanged(nodes int)
	OnIterationComplete(line mainLine)
	Close()
}

type Engine struct {
	Hash             int
	Threads          int
	ProgressMinNodes int
	Options          Options
	evalBuilder      func() Evaluator
	timeManager      timeManager
	transTable       TransTable
	historyKeys      map[uint64]int
	threads          []thread
	progress         func(SearchInfo)
	mainLine         mainLine
	start            time.Time
	nodes            int64
	mu               sync.Mutex
}

type thread struct {
	engine    *Engine
	history   historyTable
	evaluator Evaluator
	nodes     int64
	stack     [stackSize]struct {
		position       chess.Position
		moveList       [chess.MaxMoves]orderedMove
		quietsSearched [chess.MaxMoves]chess.Move
		pv             pv
		staticEval     int
		killer1        chess.Move
		killer2        chess.Move
	}
}

type pv struct {
	items [stackSize]chess.Move
	size  int
}

type mainLine struct {
	moves []chess.Move
	score int
	depth int
}

func NewEngine(evalBuilder func() Evaluator) *Engine {
	return &Engine{
		Hash:             16,
		Threads:          1,
		ProgressMinNodes: 200000,
		Options:          NewOptions(),
		evalBuilder:      evalBuilder,
	}
}

func (e *Engine) Prepare() {
	if e.transTable == nil || e.transTable.Size() != e.Hash {
		if e.transTable != nil {
			e.transTable = nil
			runtime.GC()
		}
		e.transTable = newTransTable(e.Hash)
	}
	if len(e.threads) != e.Threads {
		e.threads = make([]thread, e.Threads)
		for i := range e.threads {
			var t = &e.threads[i]
			t.engine = e
			t.evaluator = e.evalBuilder()
		}
	}
}

// Search runs an iterative-deepening search of the last position in
// searchParams.Positions; earlier positions only feed repetition detection.
// It returns as soon as ctx is cancelled or the limits are exhausted, always
// with the best line completed so far.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) (SearchInfo, error) {
	e.start = time.Now()
	e.Prepare()
	var p = &searchParams.Positions[len(searchParams.Positions)-1]
	e.timeManager = newSimpleTimeManager(ctx, e.start, searchParams.Limits, p)
	defer e.timeManager.Close()
	e.transTable.IncGeneration()
	e.historyKeys = getHistoryKeys(searchParams.Positions)
	e.nodes = 0
	e.mainLine = mainLine{}
	for i := range e.threads {
		var t = &e.threads[i]
		t.nodes = 0
		t.stack[0].position = *p
	}
	e.progress = searchParams.Progress
	if err := lazySmp(e); err != nil {
		return SearchInfo{}, err
	}
	for i := range e.threads {
		atomic.AddInt64(&e.nodes, e.threads[i].nodes&255)
	}
	return e.currentSearchResult(), nil
}

// getHistoryKeys collects the keys a repetition can still reach: everything
// back to the last irreversible move.
func getHistoryKeys(positions []chess.Position) map[uint64]int {
	var result = make(map[uint64]int)
	for i := len(positions) - 1; i >= 0; i-- {
		var p = &positions[i]
		result[p.Key]++
		if p.HalfmoveClock == 0 {
			break
		}
	}
	return result
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
	for i := range e.threads {
		e.threads[i].history.Clear()
	}
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    atomic.LoadInt64(&e.nodes),
		Time:     time.Since(e.start),
	}
}

// onIterationComplete merges one finished iteration into the shared result.
// A deeper iteration always wins; at equal depth the better score wins, so
// helper threads can improve the main line they race on.
func (e *Engine) onIterationComplete(t *thread, depth, score int) (bestMove chess.Move, bestScore int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if depth > e.mainLine.depth ||
		(depth == e.mainLine.depth && score > e.mainLine.score) {
		const height = 0
		e.mainLine = mainLine{
			depth: depth,
			score: score,
			moves: t.stack[height].pv.toSlice(),
		}
		e.timeManager.OnIterationComplete(e.mainLine)
		if e.progress != nil && atomic.LoadInt64(&e.nodes) >= int64(e.ProgressMinNodes) {
			e.progress(e.currentSearchResult())
		}
	}
	return e.mainLine.moves[0], e.mainLine.score
}

func (pv *pv) clear() {
	pv.size = 0
}

func (pv *pv) assign(m chess.Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []chess.Move {
	var result = make([]chess.Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}
