package engine

import (
	"sync/atomic"

	. "rondo/pkg/chess"
)

const pawnValue = 100

func aspirationWindow(t *thread, ml []Move, depth, prevScore int) int {
	if t.engine.Options.AspirationWindows &&
		depth >= 5 && !(prevScore <= valueLoss || prevScore >= valueWin) {
		const window = 25
		var alpha = max(-valueInfinity, prevScore-window)
		var beta = min(valueInfinity, prevScore+window)
		var score = searchRoot(t, ml, alpha, beta, depth)
		if score > alpha && score < beta {
			return score
		}
		if score >= beta {
			beta = valueInfinity
		}
		if score <= alpha {
			alpha = -valueInfinity
		}
		score = searchRoot(t, ml, alpha, beta, depth)
		if score > alpha && score < beta {
			return score
		}
	}
	return searchRoot(t, ml, -valueInfinity, valueInfinity, depth)
}

// searchRoot walks the prepared root move list in order, so the list itself
// carries the ordering between iterations and between threads.
func searchRoot(t *thread, ml []Move, alpha, beta, depth int) int {
	const height = 0
	t.clearPV(height)
	var p = &t.stack[height].position

	var best = -valueInfinity
	var bestMove Move
	var oldAlpha = alpha
	var movesSearched = 0

	for _, move := range ml {
		if !t.MakeMove(move, height) {
			continue
		}
		movesSearched++

		var newDepth = depth - 1
		var score = alpha + 1
		if movesSearched > 1 && newDepth > 0 {
			score = -t.alphaBeta(-(alpha + 1), -alpha, newDepth, height+1)
		}
		if score > alpha {
			score = -t.alphaBeta(-beta, -alpha, newDepth, height+1)
		}

		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}

	if bestMove != MoveEmpty && best > oldAlpha {
		var ttBound = boundLower
		if best < beta {
			ttBound = boundExact
		}
		t.engine.transTable.Update(p.Key, depth, valueToTT(best, height), ttBound, bestMove)
	}

	return best
}

func (t *thread) alphaBeta(alpha, beta, depth, height int) int {
	if depth <= 0 {
		return t.quiescence(alpha, beta, height)
	}
	t.clearPV(height)

	var pvNode = beta != alpha+1
	var position = &t.stack[height].position
	var isCheck = position.IsCheck()

	if height >= maxHeight {
		return t.evaluator.Evaluate(position)
	}
	if t.isRepeat(height) {
		return valueDraw
	}
	if isDraw(position) {
		return valueDraw
	}
	// mate distance pruning
	if winIn(height+1) <= alpha {
		return alpha
	}
	if lossIn(height+2) >= beta && !isCheck {
		return beta
	}

	var ttDepth, ttValue, ttBound, ttMove, ttHit = t.engine.transTable.Read(position.Key)
	if ttHit {
		ttValue = valueFromTT(ttValue, height)
		if ttDepth >= depth && !pvNode && position.LastMove != MoveEmpty {
			if ttValue >= beta && (ttBound&boundLower) != 0 {
				if ttMove != MoveEmpty && !isCaptureOrPromotion(ttMove) {
					t.updateKiller(ttMove, height)
				}
				return ttValue
			}
			if ttValue <= alpha && (ttBound&boundUpper) != 0 {
				return ttValue
			}
		}
	}

	var staticEval = t.evaluator.Evaluate(position)
	t.stack[height].staticEval = staticEval
	var improving = height < 2 || staticEval > t.stack[height-2].staticEval

	var options = &t.engine.Options
	if height+2 <= maxHeight {
		t.stack[height+2].killer1 = MoveEmpty
		t.stack[height+2].killer2 = MoveEmpty
	}
	var child = &t.stack[height+1].position

	// reverse futility pruning
	if options.ReverseFutility && !pvNode && depth <= 8 && !isCheck &&
		staticEval-pawnValue*depth >= beta {
		return staticEval
	}

	// null-move pruning
	if options.NullMovePruning && !pvNode && depth >= 2 && !isCheck &&
		position.LastMove != MoveEmpty &&
		(height <= 1 || t.stack[height-1].position.LastMove != MoveEmpty) &&
		beta < valueWin &&
		!(ttHit && ttValue < beta && (ttBound&boundUpper) != 0) &&
		!isLateEndgame(position, position.Side) &&
		staticEval >= beta {
		var reduction = 4 + depth/6 + min(2, (staticEval-beta)/200)
		t.MakeMove(MoveEmpty, height)
		var score = -t.alphaBeta(-beta, -(beta - 1), depth-reduction, height+1)
		if score >= beta {
			if score >= valueWin {
				score = beta
			}
			return score
		}
	}

	var side = position.Side
	var mi = t.initMoveIterator(height, ttMove)
	var killer1 = t.stack[height].killer1
	var killer2 = t.stack[height].killer2

	var movesSearched = 0
	var hasLegalMove = false
	var quietsSeen = 0

	var quietsSearched = t.stack[height].quietsSearched[:0]
	var bestMove Move

	var lmp = 5 + (depth-1)*depth
	if !improving {
		lmp /= 2
	}

	var best = -valueInfinity
	var oldAlpha = alpha

	for mi.Reset(); ; {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		var isNoisy = isCaptureOrPromotion(move)
		if !isNoisy {
			quietsSeen++
		}

		if depth <= 8 && best > valueLoss && hasLegalMove && !isCheck {
			var isKiller = move == killer1 || move == killer2

			// late-move pruning
			if options.Lmp && !isNoisy && !isKiller && quietsSeen > lmp {
				continue
			}

			// futility pruning
			if options.Futility && !isNoisy && !isKiller &&
				staticEval+100+pawnValue*depth <= alpha {
				continue
			}

			// SEE pruning
			if options.SeePruning {
				var seeMargin int
				if isNoisy {
					seeMargin = max(depth, (staticEval+pawnValue-alpha)/pawnValue)
				} else {
					seeMargin = depth / 2
				}
				if !SeeGE(position, move, -seeMargin) {
					continue
				}
			}
		}

		if !t.MakeMove(move, height) {
			continue
		}
		hasLegalMove = true
		movesSearched++

		var extension, reduction int

		if options.CheckExtension && child.IsCheck() && depth >= 3 {
			extension = 1
		}

		if options.LateMoveReduction && depth >= 3 && movesSearched > 1 && !isNoisy {
			reduction = options.Lmr(depth, movesSearched)
			if move == killer1 || move == killer2 {
				reduction--
			}
			if !isCheck {
				reduction -= max(-2, min(2, t.history.Read(side, move)/5000))
				if !improving {
					reduction++
				}
			}
			if pvNode {
				reduction -= 2
			}
			if isCheck || child.IsCheck() {
				reduction--
			}
			reduction = max(reduction, 0) + extension
			reduction = max(0, min(depth-2, reduction))
		}

		if !isNoisy {
			quietsSearched = append(quietsSearched, move)
		}

		var newDepth = depth - 1 + extension

		var score = alpha + 1
		// LMR
		if reduction > 0 {
			score = -t.alphaBeta(-(alpha + 1), -alpha, newDepth-reduction, height+1)
		}
		// PVS
		if score > alpha && beta != alpha+1 && movesSearched > 1 && newDepth > 0 {
			score = -t.alphaBeta(-(alpha + 1), -alpha, newDepth, height+1)
		}
		// full window
		if score > alpha {
			score = -t.alphaBeta(-beta, -alpha, newDepth, height+1)
		}

		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}

	if !hasLegalMove {
		if !isCheck {
			return valueDraw
		}
		return lossIn(height)
	}

	if alpha > oldAlpha && bestMove != MoveEmpty && !isCaptureOrPromotion(bestMove) {
		t.history.Update(side, quietsSearched, bestMove, depth)
		t.updateKiller(bestMove, height)
	}

	ttBound = 0
	if best > oldAlpha {
		ttBound |= boundLower
	}
	if best < beta {
		ttBound |= boundUpper
	}
	t.engine.transTable.Update(position.Key, depth, valueToTT(best, height), ttBound, bestMove)

	return best
}

func (t *thread) quiescence(alpha, beta, height int) int {
	t.clearPV(height)
	var position = &t.stack[height].position
	if isDraw(position) {
		return valueDraw
	}
	if height >= maxHeight {
		return t.evaluator.Evaluate(position)
	}
	if t.isRepeat(height) {
		return valueDraw
	}

	var _, ttValue, ttBound, _, ttHit = t.engine.transTable.Read(position.Key)
	if ttHit {
		ttValue = valueFromTT(ttValue, height)
		if ttBound == boundExact ||
			ttBound == boundLower && ttValue >= beta ||
			ttBound == boundUpper && ttValue <= alpha {
			return ttValue
		}
	}

	var isCheck = position.IsCheck()
	var best = -valueInfinity
	if !isCheck {
		// stand pat
		var eval = t.evaluator.Evaluate(position)
		best = max(best, eval)
		if eval > alpha {
			alpha = eval
			if alpha >= beta {
				return alpha
			}
		}
	}
	var mi = moveIteratorQS{
		position: position,
		buffer:   t.stack[height].moveList[:],
	}
	mi.Init()
	var hasLegalMove = false
	for mi.Reset(); ; {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		if !isCheck && !seeGEZero(position, move) {
			continue
		}
		if !t.MakeMove(move, height) {
			continue
		}
		hasLegalMove = true
		var score = -t.quiescence(-beta, -alpha, height+1)
		best = max(best, score)
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}
	if isCheck && !hasLegalMove {
		return lossIn(height)
	}
	return best
}

func (t *thread) initMoveIterator(height int, ttMove Move) *moveIterator {
	var mi = &moveIterator{
		position:  &t.stack[height].position,
		buffer:    t.stack[height].moveList[:],
		history:   &t.history,
		transMove: ttMove,
		killer1:   t.stack[height].killer1,
		killer2:   t.stack[height].killer2,
	}
	mi.Init()
	return mi
}

func (t *thread) incNodes() {
	t.nodes++
	if t.nodes&255 == 0 {
		var total = atomic.AddInt64(&t.engine.nodes, 256)
		t.engine.timeManager.OnNodesChanged(int(total))
		if t.engine.timeManager.IsDone() {
			panic(errSearchTimeout)
		}
	}
}

func (t *thread) isRepeat(height int) bool {
	var p = &t.stack[height].position

	if p.HalfmoveClock == 0 || p.LastMove == MoveEmpty {
		return false
	}
	for i := height - 1; i >= 0; i-- {
		var temp = &t.stack[i].position
		if temp.Key == p.Key {
			return true
		}
		if temp.HalfmoveClock == 0 || temp.LastMove == MoveEmpty {
			return false
		}
	}

	return t.engine.historyKeys[p.Key] >= 2
}

func (e *Engine) genRootMoves() []Move {
	var t = &e.threads[0]
	const height = 0
	var p = &t.stack[height].position
	_, _, _, ttMove, _ := e.transTable.Read(p.Key)

	var mi = t.initMoveIterator(height, ttMove)

	var result []Move
	var child = &t.stack[height+1].position
	for mi.Reset(); ; {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		if p.MakeMove(move, child) {
			result = append(result, move)
		}
	}
	return result
}

func (t *thread) updateKiller(move Move, height int) {
	if t.stack[height].killer1 != move {
		t.stack[height].killer2 = t.stack[height].killer1
		t.stack[height].killer1 = move
	}
}

func (t *thread) MakeMove(move Move, height int) bool {
	var pos = &t.stack[height].position
	var child = &t.stack[height+1].position
	if move == MoveEmpty {
		pos.MakeNullMove(child)
	} else {
		if !pos.MakeMove(move, child) {
			return false
		}
	}
	t.incNodes()
	return true
}

func (t *thread) clearPV(height int) {
	t.stack[height].pv.clear()
}

func (t *thread) assignPV(height int, move Move) {
	t.stack[height].pv.assign(move, &t.stack[height+1].pv)
}
