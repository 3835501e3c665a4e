package engine

import "rondo/pkg/chess"

const historyMax = 1 << 14

// historyTable scores quiet moves by side, from and to square. Values decay
// toward the newest outcome, so stale lines lose influence quickly.
type historyTable [2 << 12]int16

func sideFromToIndex(side int, move chess.Move) int {
	return side<<12 | move.From()<<6 | move.To()
}

func (h *historyTable) Read(side int, move chess.Move) int {
	return int(h[sideFromToIndex(side, move)])
}

func (h *historyTable) Update(side int, quietsSearched []chess.Move, bestMove chess.Move, depth int) {
	var bonus = min(depth*depth, 400)
	for _, m := range quietsSearched {
		var good = m == bestMove
		updateHistory(&h[sideFromToIndex(side, m)], bonus, good)
		if good {
			break
		}
	}
}

func (h *historyTable) Clear() {
	for i := range h {
		h[i] = 0
	}
}

// Exponential moving average.
func updateHistory(v *int16, bonus int, good bool) {
	var newVal int
	if good {
		newVal = historyMax
	} else {
		newVal = -historyMax
	}
	*v += int16((newVal - int(*v)) * bonus / 512)
}
