package engine

import (
	"sync/atomic"

	"rondo/pkg/chess"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// 16 bytes. The gate serializes writers and protects readers from torn
// entries; readers that lose the race simply miss.
type transEntry struct {
	gate    int32
	key32   uint32
	moveGen uint32
	score   int16
	depth   int8
	bound   uint8
}

func (entry *transEntry) Move() chess.Move {
	return chess.Move(entry.moveGen & 0x1fffff)
}

func (entry *transEntry) Generation() uint16 {
	return uint16(entry.moveGen >> 21)
}

func (entry *transEntry) setMoveAndGen(move chess.Move, gen uint16) {
	entry.moveGen = uint32(move) + uint32(gen)<<21
}

type transTable struct {
	megabytes  int
	entries    []transEntry
	generation uint16
	mask       uint32
}

func newTransTable(megabytes int) *transTable {
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	return &transTable{
		megabytes: megabytes,
		entries:   make([]transEntry, size),
		mask:      uint32(size - 1),
	}
}

func (tt *transTable) Size() int {
	return tt.megabytes
}

// IncGeneration starts a new search generation; stale entries become replacement
// victims without scanning the table.
func (tt *transTable) IncGeneration() {
	tt.generation = (tt.generation + 1) & 0x7ff
}

func (tt *transTable) Clear() {
	tt.generation = 0
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, move chess.Move, ok bool) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		if entry.key32 == uint32(key>>32) {
			entry.setMoveAndGen(entry.Move(), tt.generation)
			score = int(entry.score)
			move = entry.Move()
			depth = int(entry.depth)
			bound = int(entry.bound)
			ok = true
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
	return
}

func (tt *transTable) Update(key uint64, depth, score, bound int, move chess.Move) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		var replace bool
		if entry.key32 == uint32(key>>32) {
			replace = depth >= int(entry.depth)-3 || bound == boundExact
		} else {
			replace = entry.Generation() != tt.generation ||
				depth >= int(entry.depth)
		}
		if replace {
			entry.key32 = uint32(key >> 32)
			entry.score = int16(score)
			entry.depth = int8(depth)
			entry.bound = uint8(bound)
			entry.setMoveAndGen(move, tt.generation)
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
}
