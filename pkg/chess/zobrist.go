package chess

import "math/rand"

var (
	pieceKeys  [2][PieceNB][64]uint64
	castleKeys [16]uint64
	epFileKeys [8]uint64
	sideKey    uint64
)

func pieceKey(piece, side, sq int) uint64 {
	return pieceKeys[side][piece][sq]
}

// computeKey builds the hash from scratch. Incremental updates in MakeMove
// must stay consistent with it; move counters deliberately do not contribute.
func (p *Position) computeKey() uint64 {
	var key uint64
	if p.Side == SideWhite {
		key ^= sideKey
	}
	key ^= castleKeys[p.CastleRights]
	if p.EpSquare != SquareNone {
		key ^= epFileKeys[File(p.EpSquare)]
	}
	for side := SideWhite; side <= SideBlack; side++ {
		for x := p.Colors[side]; x != 0; x &= x - 1 {
			var sq = FirstOne(x)
			key ^= pieceKey(p.WhatPiece(sq), side, sq)
		}
	}
	return key
}

func init() {
	var r = rand.New(rand.NewSource(63))
	sideKey = r.Uint64()
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
	for side := range pieceKeys {
		for piece := Pawn; piece <= King; piece++ {
			for sq := 0; sq < 64; sq++ {
				pieceKeys[side][piece][sq] = r.Uint64()
			}
		}
	}

	// Each castle right owns one key; a rights mask hashes to the xor of its
	// bits so that incremental right changes compose.
	var rights [4]uint64
	for i := range rights {
		rights[i] = r.Uint64()
	}
	for mask := range castleKeys {
		for i := 0; i < 4; i++ {
			if mask&(1<<uint(i)) != 0 {
				castleKeys[mask] ^= rights[i]
			}
		}
	}
}
