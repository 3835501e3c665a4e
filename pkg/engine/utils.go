package engine

import (
	"rondo/pkg/chess"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

// Mate scores are stored relative to the node, not the root, so they stay
// valid when the entry is reached over a different path.
func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}
	if v <= valueLoss {
		return v - height
	}
	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}
	if v <= valueLoss {
		return v + height
	}
	return v
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}

func isCaptureOrPromotion(move chess.Move) bool {
	return move.Captured() != chess.NoPiece ||
		move.Promotion() != chess.NoPiece
}

// Zugzwang guard for null-move pruning.
func isLateEndgame(p *chess.Position, side int) bool {
	var own = p.Colors[side]
	return (p.Pieces[chess.Rook]|p.Pieces[chess.Queen])&own == 0 &&
		!chess.MoreThanOne((p.Pieces[chess.Knight]|p.Pieces[chess.Bishop])&own)
}

func isDraw(p *chess.Position) bool {
	if p.HalfmoveClock > 100 {
		return true
	}
	if (p.Pieces[chess.Pawn]|p.Pieces[chess.Rook]|p.Pieces[chess.Queen]) == 0 &&
		!chess.MoreThanOne(p.Pieces[chess.Knight]|p.Pieces[chess.Bishop]) {
		return true
	}
	return false
}

func findMoveIndex(ml []chess.Move, move chess.Move) int {
	for i := range ml {
		if ml[i] == move {
			return i
		}
	}
	return -1
}

func moveToBegin(ml []chess.Move, index int) {
	if index == 0 {
		return
	}
	var item = ml[index]
	for i := index; i > 0; i-- {
		ml[i] = ml[i-1]
	}
	ml[0] = item
}

func cloneMoves(ml []chess.Move) []chess.Move {
	var result = make([]chess.Move, len(ml))
	copy(result, ml)
	return result
}

// rotateMoves shifts the root move list by n so helper threads start from
// different candidates and populate the table along different lines.
func rotateMoves(ml []chess.Move, n int) {
	if len(ml) < 2 {
		return
	}
	n %= len(ml)
	if n == 0 {
		return
	}
	var tmp = cloneMoves(ml[:n])
	copy(ml, ml[n:])
	copy(ml[len(ml)-n:], tmp)
}
