package chess

import "strings"

// Move packs source, destination, promotion piece, moving piece and captured
// piece into 21 bits: from | to<<6 | promotion<<12 | piece<<15 | captured<<18.
// Equality of moves is equality of the packed word.
type Move int32

const MoveEmpty Move = 0

func makeMove(from, to, piece, captured int) Move {
	return Move(from | to<<6 | piece<<15 | captured<<18)
}

func makePromotionMove(from, to, promotion, captured int) Move {
	return Move(from | to<<6 | promotion<<12 | Pawn<<15 | captured<<18)
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) Promotion() int {
	return int((m >> 12) & 7)
}

func (m Move) Piece() int {
	return int((m >> 15) & 7)
}

func (m Move) Captured() int {
	return int((m >> 18) & 7)
}

// String renders the move in long algebraic notation as used by UCI.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var promotion = ""
	if m.Promotion() != NoPiece {
		promotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + promotion
}

// MakeMoveLAN applies a move given in long algebraic notation, returning the
// successor position. ok is false if the move is not legal here.
func (p *Position) MakeMoveLAN(lan string) (Position, bool) {
	var buffer [MaxMoves]Move
	for _, mv := range GenerateMoves(buffer[:0], p) {
		if strings.EqualFold(mv.String(), lan) {
			var child Position
			if p.MakeMove(mv, &child) {
				return child, true
			}
			return Position{}, false
		}
	}
	return Position{}, false
}
