package engine

import . "rondo/pkg/chess"

const sortTableKeyImportant = 100000

type orderedMove struct {
	move Move
	key  int32
}

// moveIterator serves the main-search order: hash move, then winning or
// equal captures by MVV-LVA, killers, history-scored quiets, and finally
// losing captures. Both generation phases are scored up front; ordering
// happens lazily in Next.
type moveIterator struct {
	position  *Position
	buffer    []orderedMove
	history   *historyTable
	transMove Move
	killer1   Move
	killer2   Move
	count     int
	index     int
}

func (mi *moveIterator) Init() {
	var genBuffer [MaxMoves]Move
	var ml = GenerateMoves(genBuffer[:0], mi.position)
	mi.count = len(ml)

	var side = mi.position.Side
	for i, m := range ml {
		var score int
		if m == mi.transMove {
			score = sortTableKeyImportant + 2000
		} else if isCaptureOrPromotion(m) {
			if seeGEZero(mi.position, m) {
				score = sortTableKeyImportant + 1000 + mvvlva(m)
			} else {
				score = mvvlva(m)
			}
		} else if m == mi.killer1 {
			score = sortTableKeyImportant + 1
		} else if m == mi.killer2 {
			score = sortTableKeyImportant
		} else {
			score = mi.history.Read(side, m)
		}
		mi.buffer[i] = orderedMove{move: m, key: int32(score)}
	}
}

func (mi *moveIterator) Reset() {
	mi.index = 0
}

func (mi *moveIterator) Next() Move {
	if mi.index >= mi.count {
		return MoveEmpty
	}
	const sortMovesIndex = 1
	if mi.index <= sortMovesIndex {
		if mi.index == sortMovesIndex {
			sortMoves(mi.buffer[mi.index:mi.count])
		} else {
			moveToTop(mi.buffer[mi.index:mi.count])
		}
	}
	var m = mi.buffer[mi.index].move
	mi.index++
	return m
}

// moveIteratorQS generates only the first phase unless the side to move is
// in check, in which case every evasion is tried.
type moveIteratorQS struct {
	position *Position
	buffer   []orderedMove
	count    int
	index    int
}

func (mi *moveIteratorQS) Init() {
	var genBuffer [MaxMoves]Move
	var ml []Move
	if mi.position.IsCheck() {
		ml = GenerateMoves(genBuffer[:0], mi.position)
	} else {
		ml = GenerateCaptures(genBuffer[:0], mi.position)
	}
	mi.count = len(ml)

	for i, m := range ml {
		var score int
		if isCaptureOrPromotion(m) {
			score = 29000 + mvvlva(m)
		}
		mi.buffer[i] = orderedMove{move: m, key: int32(score)}
	}

	sortMoves(mi.buffer[:mi.count])
}

func (mi *moveIteratorQS) Reset() {
	mi.index = 0
}

func (mi *moveIteratorQS) Next() Move {
	if mi.index >= mi.count {
		return MoveEmpty
	}
	var m = mi.buffer[mi.index].move
	mi.index++
	return m
}

var sortPieceValues = [...]int{NoPiece: 0, Pawn: 1, Knight: 2, Bishop: 3, Rook: 4, Queen: 5, King: 6}

func mvvlva(move Move) int {
	return 8*(sortPieceValues[move.Captured()]+
		sortPieceValues[move.Promotion()]) -
		sortPieceValues[move.Piece()]
}

// Insertion sort, descending by key. Move lists are short and mostly
// consumed only partially.
func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].key < t.key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}

func moveToTop(ml []orderedMove) {
	var bestIndex = 0
	for i := 1; i < len(ml); i++ {
		if ml[i].key > ml[bestIndex].key {
			bestIndex = i
		}
	}
	if bestIndex != 0 {
		ml[0], ml[bestIndex] = ml[bestIndex], ml[0]
	}
}
