package eval

import (
	. "rondo/pkg/chess"
)

// Weights holds the tapered evaluation terms. PST entries already include
// material, are indexed from each side's own point of view and carry the
// sign of the side, so evaluation is a plain sum over all pieces.
type Weights struct {
	PST                [2][PieceNB][64]Score
	BishopPairMaterial Score
}

var material = [PieceNB]Score{
	Pawn:   S(131, 107),
	Knight: S(371, 291),
	Bishop: S(400, 319),
	Rook:   S(579, 450),
	Queen:  S(1062, 966),
}

func (w *Weights) init() {
	w.BishopPairMaterial = S(25, 40)
	for piece := Pawn; piece <= King; piece++ {
		for sq := 0; sq < 64; sq++ {
			var s = material[piece] + pstTables[piece][sq]
			w.PST[SideWhite][piece][sq] = s
			w.PST[SideBlack][piece][FlipSquare(sq)] = -s
		}
	}
}

// Square tables from white's point of view, a1 first. Values were tuned on
// quiet positions from self-play games.
var pstTables = [PieceNB][64]Score{
	Pawn: {
		S(-1, -2), S(-9, -17), S(-9, 8), S(-1, -15), S(-4, -8), S(14, -19), S(-5, 3), S(-10, 0),
		S(-3, 4), S(14, 6), S(-1, 16), S(-38, -9), S(2, -10), S(32, 11), S(34, 16), S(-3, 3),
		S(-10, 1), S(-5, 0), S(0, -5), S(-9, 6), S(6, 3), S(-12, -11), S(7, -6), S(-10, 6),
		S(-9, -1), S(0, -4), S(10, -3), S(33, 11), S(27, 12), S(-4, 0), S(-10, -3), S(-16, -3),
		S(10, -5), S(14, 7), S(15, 6), S(24, 28), S(29, 20), S(17, 12), S(10, -1), S(7, 11),
		S(41, 10), S(49, 10), S(30, 17), S(59, 19), S(50, 19), S(46, 21), S(51, 19), S(40, 0),
		S(61, 55), S(58, 34), S(68, 50), S(104, 54), S(88, 36), S(71, 53), S(64, 41), S(46, 50),
		S(3, 1), S(-2, 0), S(-8, -4), S(12, -1), S(-11, 0), S(-5, -5), S(-1, -5), S(0, -4),
	},
	Knight: {
		S(-175, -55), S(-29, -21), S(-68, -17), S(-52, -18), S(-50, -33), S(-52, -24), S(-32, -18), S(-95, -32),
		S(-95, -15), S(-67, -7), S(-16, 2), S(0, 6), S(-7, 4), S(-24, 3), S(-39, -8), S(-42, -37),
		S(-44, -31), S(-7, 10), S(38, 2), S(13, 1), S(12, 1), S(41, 21), S(9, 5), S(-45, -22),
		S(-18, -35), S(-17, 2), S(17, 25), S(14, 19), S(17, 4), S(6, 5), S(0, 3), S(-10, -21),
		S(-3, -27), S(17, 4), S(40, 6), S(59, 23), S(44, 12), S(71, 23), S(15, 4), S(33, -23),
		S(-12, -21), S(32, 4), S(-14, 10), S(68, -6), S(54, 3), S(-15, 2), S(47, -9), S(23, -20),
		S(-36, -42), S(-20, -32), S(69, -9), S(-12, 2), S(34, 1), S(35, -6), S(-4, -15), S(-9, -33),
		S(-89, -43), S(-56, -53), S(-52, -18), S(-40, -26), S(-19, -25), S(-93, -30), S(-43, -38), S(-108, -27),
	},
	Bishop: {
		S(-60, -16), S(-19, -3), S(-3, -15), S(-58, -7), S(-56, -4), S(-8, -16), S(-34, -12), S(-62, -1),
		S(-25, 0), S(5, -7), S(0, -5), S(-7, 0), S(2, 5), S(-20, 8), S(24, 15), S(-21, 1),
		S(-6, -1), S(6, 13), S(1, 13), S(38, 6), S(32, -2), S(-8, 23), S(12, 17), S(-14, 3),
		S(-21, -6), S(-17, 0), S(32, 14), S(8, 4), S(0, 3), S(25, 4), S(-14, -2), S(-5, 1),
		S(0, -5), S(15, 0), S(14, 17), S(24, 8), S(24, 12), S(16, 6), S(10, 11), S(3, -11),
		S(-14, -12), S(11, 4), S(-54, 4), S(22, 6), S(-1, -3), S(-84, -7), S(44, 1), S(29, -7),
		S(-36, 2), S(-8, 9), S(-4, 4), S(-111, 6), S(-86, -1), S(-11, 0), S(-32, 3), S(-3, -17),
		S(-28, -10), S(-44, -2), S(-53, 6), S(-53, 1), S(-30, -12), S(-105, -7), S(-37, -9), S(-8, -17),
	},
	Rook: {
		S(-36, 15), S(-22, 8), S(-8, -2), S(2, -4), S(-4, 4), S(-3, -1), S(-8, -1), S(-47, 0),
		S(-47, -12), S(-34, 8), S(-26, -3), S(-27, 2), S(-32, 0), S(-23, -3), S(-19, 14), S(-28, 4),
		S(-31, 0), S(-20, 3), S(-22, 1), S(-24, -19), S(-30, -4), S(-19, 1), S(-8, -3), S(-24, -8),
		S(-12, 0), S(-15, 7), S(-8, 0), S(-22, 0), S(-24, -2), S(-23, 5), S(-26, 1), S(-22, -11),
		S(-8, 3), S(-14, 0), S(5, 6), S(-2, -4), S(-6, 0), S(-2, 3), S(-3, -20), S(-5, 1),
		S(1, -11), S(14, 0), S(14, 4), S(14, -11), S(2, -14), S(23, -18), S(28, -9), S(16, -3),
		S(15, 0), S(25, 2), S(40, 6), S(35, 0), S(37, 5), S(44, 0), S(42, 18), S(33, 7),
		S(-5, -11), S(22, 3), S(12, -8), S(-4, -14), S(-5, -3), S(-22, 0), S(15, -6), S(19, 8),
	},
	Queen: {
		S(-40, -7), S(-51, -11), S(-47, 0), S(15, -2), S(-33, -5), S(-63, -3), S(-9, 2), S(-30, -12),
		S(-109, 0), S(-62, -1), S(-4, 17), S(-2, -2), S(-7, -2), S(-7, -6), S(-13, 1), S(-5, -13),
		S(-46, -11), S(-2, -6), S(-7, 5), S(-2, 2), S(-5, 12), S(10, 4), S(2, 7), S(-8, -2),
		S(-5, -3), S(-21, 8), S(0, 0), S(26, 8), S(8, 17), S(-1, 0), S(5, -4), S(7, 10),
		S(-20, 0), S(-7, -3), S(0, 1), S(30, 4), S(28, -1), S(35, 1), S(18, -3), S(48, 6),
		S(-22, -14), S(-4, 0), S(24, 0), S(41, 0), S(65, 4), S(93, 15), S(114, -1), S(76, -20),
		S(-29, -12), S(-20, -4), S(8, 3), S(18, -7), S(35, -17), S(108, 7), S(63, 3), S(95, -16),
		S(-6, -19), S(17, -10), S(25, -9), S(19, 6), S(52, 2), S(53, -4), S(44, 0), S(52, -23),
	},
	King: {
		S(-44, -41), S(19, -42), S(22, -17), S(-60, -18), S(-6, -41), S(-58, -27), S(36, -28), S(-30, -47),
		S(-44, -25), S(-19, -32), S(-29, -9), S(-36, -9), S(-33, 0), S(-15, -5), S(-4, -15), S(-32, -15),
		S(-45, -40), S(-30, -4), S(-20, 4), S(-23, 27), S(-14, 41), S(-18, 18), S(-18, -14), S(-53, -29),
		S(-46, -23), S(-15, -10), S(-4, 39), S(0, 40), S(4, 45), S(-4, 23), S(-12, -4), S(-46, -16),
		S(-18, -29), S(15, 3), S(27, 19), S(15, 44), S(21, 31), S(19, 28), S(15, -3), S(-23, -30),
		S(-19, -25), S(35, -13), S(29, 10), S(30, 34), S(26, 39), S(41, 6), S(41, -7), S(7, -13),
		S(-18, -27), S(27, -18), S(34, 1), S(15, 0), S(25, 1), S(27, 1), S(47, -10), S(14, -15),
		S(-38, -44), S(-14, -45), S(-19, -27), S(-41, -9), S(-25, -21), S(-15, 8), S(32, -37), S(-2, -39),
	},
}
