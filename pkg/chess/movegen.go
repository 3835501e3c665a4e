package chess

// Castling requires the squares between king and rook to be empty.
var (
	f1g1Mask uint64
	b1d1Mask uint64
	f8g8Mask uint64
	b8d8Mask uint64
)

func init() {
	f1g1Mask = Between(SquareE1, SquareH1)
	b1d1Mask = Between(SquareE1, SquareA1)
	f8g8Mask = Between(SquareE8, SquareH8)
	b8d8Mask = Between(SquareE8, SquareA8)
}

var (
	WhiteKingSideCastle  = makeMove(SquareE1, SquareG1, King, NoPiece)
	WhiteQueenSideCastle = makeMove(SquareE1, SquareC1, King, NoPiece)
	BlackKingSideCastle  = makeMove(SquareE8, SquareG8, King, NoPiece)
	BlackQueenSideCastle = makeMove(SquareE8, SquareC8, King, NoPiece)
)

func appendPromotions(ml []Move, from, to, captured int) []Move {
	return append(ml,
		makePromotionMove(from, to, Queen, captured),
		makePromotionMove(from, to, Rook, captured),
		makePromotionMove(from, to, Bishop, captured),
		makePromotionMove(from, to, Knight, captured))
}

// GenerateMoves appends every pseudo-legal move. Moves leaving the own king
// in check are rejected later by MakeMove, not here.
func GenerateMoves(ml []Move, p *Position) []Move {
	ml = GenerateCaptures(ml, p)
	return GenerateQuiets(ml, p)
}

// GenerateCaptures is the first generation phase: captures, en passant and
// all promotions.
func GenerateCaptures(ml []Move, p *Position) []Move {
	var own = p.Own()
	var opp = p.Opp()
	var occ = p.All()
	var ownPawns = p.Pieces[Pawn] & own

	if p.EpSquare != SquareNone {
		for fromBB := PawnAttacks(p.EpSquare, p.Side^1) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			ml = append(ml, makeMove(FirstOne(fromBB), p.EpSquare, Pawn, Pawn))
		}
	}

	if p.Side == SideWhite {
		for fromBB := ownPawns & ^Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			if File(from) > FileA && SquareMask[from+7]&opp != 0 {
				ml = append(ml, makeMove(from, from+7, Pawn, p.WhatPiece(from+7)))
			}
			if File(from) < FileH && SquareMask[from+9]&opp != 0 {
				ml = append(ml, makeMove(from, from+9, Pawn, p.WhatPiece(from+9)))
			}
		}
		for fromBB := ownPawns & Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			if SquareMask[from+8]&occ == 0 {
				ml = appendPromotions(ml, from, from+8, NoPiece)
			}
			if File(from) > FileA && SquareMask[from+7]&opp != 0 {
				ml = appendPromotions(ml, from, from+7, p.WhatPiece(from+7))
			}
			if File(from) < FileH && SquareMask[from+9]&opp != 0 {
				ml = appendPromotions(ml, from, from+9, p.WhatPiece(from+9))
			}
		}
	} else {
		for fromBB := ownPawns & ^Rank2Mask; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			if File(from) > FileA && SquareMask[from-9]&opp != 0 {
				ml = append(ml, makeMove(from, from-9, Pawn, p.WhatPiece(from-9)))
			}
			if File(from) < FileH && SquareMask[from-7]&opp != 0 {
				ml = append(ml, makeMove(from, from-7, Pawn, p.WhatPiece(from-7)))
			}
		}
		for fromBB := ownPawns & Rank2Mask; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			if SquareMask[from-8]&occ == 0 {
				ml = appendPromotions(ml, from, from-8, NoPiece)
			}
			if File(from) > FileA && SquareMask[from-9]&opp != 0 {
				ml = appendPromotions(ml, from, from-9, p.WhatPiece(from-9))
			}
			if File(from) < FileH && SquareMask[from-7]&opp != 0 {
				ml = appendPromotions(ml, from, from-7, p.WhatPiece(from-7))
			}
		}
	}

	for fromBB := p.Pieces[Knight] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := KnightAttacks[from] & opp; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml = append(ml, makeMove(from, to, Knight, p.WhatPiece(to)))
		}
	}

	for fromBB := p.Pieces[Bishop] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := BishopAttacks(from, occ) & opp; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml = append(ml, makeMove(from, to, Bishop, p.WhatPiece(to)))
		}
	}

	for fromBB := p.Pieces[Rook] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := RookAttacks(from, occ) & opp; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml = append(ml, makeMove(from, to, Rook, p.WhatPiece(to)))
		}
	}

	for fromBB := p.Pieces[Queen] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := QueenAttacks(from, occ) & opp; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml = append(ml, makeMove(from, to, Queen, p.WhatPiece(to)))
		}
	}

	{
		var from = p.KingSquare(p.Side)
		for toBB := KingAttacks[from] & opp; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml = append(ml, makeMove(from, to, King, p.WhatPiece(to)))
		}
	}

	return ml
}

// GenerateQuiets is the second generation phase: non-capturing,
// non-promoting moves including castling.
func GenerateQuiets(ml []Move, p *Position) []Move {
	var own = p.Own()
	var occ = p.All()
	var free = ^occ
	var ownPawns = p.Pieces[Pawn] & own

	if p.Side == SideWhite {
		for fromBB := ownPawns & ^Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			if SquareMask[from+8]&occ == 0 {
				ml = append(ml, makeMove(from, from+8, Pawn, NoPiece))
				if Rank(from) == Rank2 && SquareMask[from+16]&occ == 0 {
					ml = append(ml, makeMove(from, from+16, Pawn, NoPiece))
				}
			}
		}
	} else {
		for fromBB := ownPawns & ^Rank2Mask; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			if SquareMask[from-8]&occ == 0 {
				ml = append(ml, makeMove(from, from-8, Pawn, NoPiece))
				if Rank(from) == Rank7 && SquareMask[from-16]&occ == 0 {
					ml = append(ml, makeMove(from, from-16, Pawn, NoPiece))
				}
			}
		}
	}

	for fromBB := p.Pieces[Knight] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := KnightAttacks[from] & free; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, makeMove(from, FirstOne(toBB), Knight, NoPiece))
		}
	}

	for fromBB := p.Pieces[Bishop] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := BishopAttacks(from, occ) & free; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, makeMove(from, FirstOne(toBB), Bishop, NoPiece))
		}
	}

	for fromBB := p.Pieces[Rook] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := RookAttacks(from, occ) & free; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, makeMove(from, FirstOne(toBB), Rook, NoPiece))
		}
	}

	for fromBB := p.Pieces[Queen] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := QueenAttacks(from, occ) & free; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, makeMove(from, FirstOne(toBB), Queen, NoPiece))
		}
	}

	{
		var from = p.KingSquare(p.Side)
		for toBB := KingAttacks[from] & free; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, makeMove(from, FirstOne(toBB), King, NoPiece))
		}
	}

	// Castling: path must be empty, and neither the king square nor the
	// transit square attacked. The destination square is verified by
	// MakeMove like any other king move.
	if p.Side == SideWhite {
		if p.CastleRights&CastleWhiteKing != 0 &&
			occ&f1g1Mask == 0 &&
			!p.isAttacked(SquareE1, SideBlack) &&
			!p.isAttacked(SquareF1, SideBlack) {
			ml = append(ml, WhiteKingSideCastle)
		}
		if p.CastleRights&CastleWhiteQueen != 0 &&
			occ&b1d1Mask == 0 &&
			!p.isAttacked(SquareE1, SideBlack) &&
			!p.isAttacked(SquareD1, SideBlack) {
			ml = append(ml, WhiteQueenSideCastle)
		}
	} else {
		if p.CastleRights&CastleBlackKing != 0 &&
			occ&f8g8Mask == 0 &&
			!p.isAttacked(SquareE8, SideWhite) &&
			!p.isAttacked(SquareF8, SideWhite) {
			ml = append(ml, BlackKingSideCastle)
		}
		if p.CastleRights&CastleBlackQueen != 0 &&
			occ&b8d8Mask == 0 &&
			!p.isAttacked(SquareE8, SideWhite) &&
			!p.isAttacked(SquareD8, SideWhite) {
			ml = append(ml, BlackQueenSideCastle)
		}
	}

	return ml
}

// GenerateLegalMoves is the convenience form used at the root and in tools;
// the search itself filters through MakeMove.
func GenerateLegalMoves(p *Position) []Move {
	var buffer [MaxMoves]Move
	var child Position
	var result []Move
	for _, m := range GenerateMoves(buffer[:0], p) {
		if p.MakeMove(m, &child) {
			result = append(result, m)
		}
	}
	return result
}
