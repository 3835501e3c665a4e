// Package chess holds the board representation: bitboard-backed positions,
// packed moves, Zobrist hashing and phased move generation.
package chess

const (
	NoPiece int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceNB
)

const (
	SideWhite = 0
	SideBlack = 1
)

const (
	CastleWhiteKing = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// MaxMoves bounds the number of pseudo-legal moves in any reachable position.
const MaxMoves = 256

const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a full game state. Pieces is indexed by piece type, Colors by
// side. Key is a Zobrist hash of board+rights+en-passant+side only, so that
// transpositions reached by different move orders collapse to one key.
type Position struct {
	Pieces        [PieceNB]uint64
	Colors        [2]uint64
	Checkers      uint64
	Side          int
	CastleRights  int
	EpSquare      int
	HalfmoveClock int
	Key           uint64
	LastMove      Move
}

// All returns the occupancy of both sides.
func (p *Position) All() uint64 {
	return p.Colors[SideWhite] | p.Colors[SideBlack]
}

// Own returns the occupancy of the side to move.
func (p *Position) Own() uint64 {
	return p.Colors[p.Side]
}

// Opp returns the occupancy of the side not to move.
func (p *Position) Opp() uint64 {
	return p.Colors[p.Side^1]
}

func (p *Position) IsCheck() bool {
	return p.Checkers != 0
}

func (p *Position) KingSquare(side int) int {
	return FirstOne(p.Pieces[King] & p.Colors[side])
}
