package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// castleRightsMask[sq] keeps the rights that survive a piece moving from or
// being captured on sq. Rights lost here are lost for the rest of the game.
var castleRightsMask [64]int

func init() {
	for sq := range castleRightsMask {
		castleRightsMask[sq] = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
	}
	castleRightsMask[SquareA1] &^= CastleWhiteQueen
	castleRightsMask[SquareE1] &^= CastleWhiteQueen | CastleWhiteKing
	castleRightsMask[SquareH1] &^= CastleWhiteKing
	castleRightsMask[SquareA8] &^= CastleBlackQueen
	castleRightsMask[SquareE8] &^= CastleBlackQueen | CastleBlackKing
	castleRightsMask[SquareH8] &^= CastleBlackKing
}

// WhatPiece returns the piece type on sq, or NoPiece.
func (p *Position) WhatPiece(sq int) int {
	var bb = SquareMask[sq]
	if p.All()&bb == 0 {
		return NoPiece
	}
	for piece := Pawn; piece <= King; piece++ {
		if p.Pieces[piece]&bb != 0 {
			return piece
		}
	}
	panic(fmt.Errorf("inconsistent occupancy on %s", SquareName(sq)))
}

// SideOn reports the piece type and side on sq; NoPiece if empty.
func (p *Position) SideOn(sq int) (piece, side int) {
	var bb = SquareMask[sq]
	if p.Colors[SideWhite]&bb != 0 {
		return p.WhatPiece(sq), SideWhite
	}
	if p.Colors[SideBlack]&bb != 0 {
		return p.WhatPiece(sq), SideBlack
	}
	return NoPiece, SideWhite
}

func (p *Position) xorPiece(piece, side, sq int) {
	var bb = SquareMask[sq]
	p.Colors[side] ^= bb
	p.Pieces[piece] ^= bb
	p.Key ^= pieceKey(piece, side, sq)
}

func (p *Position) movePiece(piece, side, from, to int) {
	var bb = SquareMask[from] ^ SquareMask[to]
	p.Colors[side] ^= bb
	p.Pieces[piece] ^= bb
	p.Key ^= pieceKey(piece, side, from) ^ pieceKey(piece, side, to)
}

// MakeMove writes the successor of p after move into child and reports
// whether the move is legal. p itself is never modified, so one Position per
// ply on a preallocated stack suffices for a whole search branch.
func (src *Position) MakeMove(move Move, child *Position) bool {
	var from = move.From()
	var to = move.To()
	var piece = move.Piece()
	var captured = move.Captured()
	var us = src.Side

	child.Pieces = src.Pieces
	child.Colors = src.Colors

	child.Side = us ^ 1
	child.Key = src.Key ^ sideKey

	child.CastleRights = src.CastleRights & castleRightsMask[from] & castleRightsMask[to]
	child.Key ^= castleKeys[child.CastleRights^src.CastleRights]

	if piece == Pawn || captured != NoPiece {
		child.HalfmoveClock = 0
	} else {
		child.HalfmoveClock = src.HalfmoveClock + 1
	}

	child.EpSquare = SquareNone
	if src.EpSquare != SquareNone {
		child.Key ^= epFileKeys[File(src.EpSquare)]
	}

	if captured != NoPiece {
		if captured == Pawn && to == src.EpSquare {
			if us == SideWhite {
				child.xorPiece(Pawn, SideBlack, to-8)
			} else {
				child.xorPiece(Pawn, SideWhite, to+8)
			}
		} else {
			child.xorPiece(captured, us^1, to)
		}
	}

	child.movePiece(piece, us, from, to)

	switch piece {
	case Pawn:
		if to == from+16 || to == from-16 {
			var ep = (from + to) / 2
			if child.epCapturable(ep) {
				child.EpSquare = ep
				child.Key ^= epFileKeys[File(ep)]
			}
		}
		if promotion := move.Promotion(); promotion != NoPiece {
			child.xorPiece(Pawn, us, to)
			child.xorPiece(promotion, us, to)
		}
	case King:
		switch {
		case from == SquareE1 && to == SquareG1 && us == SideWhite:
			child.movePiece(Rook, SideWhite, SquareH1, SquareF1)
		case from == SquareE1 && to == SquareC1 && us == SideWhite:
			child.movePiece(Rook, SideWhite, SquareA1, SquareD1)
		case from == SquareE8 && to == SquareG8 && us == SideBlack:
			child.movePiece(Rook, SideBlack, SquareH8, SquareF8)
		case from == SquareE8 && to == SquareC8 && us == SideBlack:
			child.movePiece(Rook, SideBlack, SquareA8, SquareD8)
		}
	}

	if !child.isLegal() {
		return false
	}
	child.Checkers = child.computeCheckers()
	child.LastMove = move
	return true
}

// epCapturable reports whether a pawn of the side to move can capture on sq.
// An en-passant square is only recorded when this holds, so positions that
// transpose apart from an uncapturable double push share one key.
func (p *Position) epCapturable(sq int) bool {
	return PawnAttacks(sq, p.Side^1)&p.Pieces[Pawn]&p.Colors[p.Side] != 0
}

// MakeNullMove passes the turn; used by null-move pruning.
func (src *Position) MakeNullMove(child *Position) {
	child.Pieces = src.Pieces
	child.Colors = src.Colors
	child.CastleRights = src.CastleRights
	child.HalfmoveClock = src.HalfmoveClock + 1

	child.Side = src.Side ^ 1
	child.Key = src.Key ^ sideKey

	child.EpSquare = SquareNone
	if src.EpSquare != SquareNone {
		child.Key ^= epFileKeys[File(src.EpSquare)]
	}

	child.Checkers = 0
	child.LastMove = MoveEmpty
}

// isAttacked reports whether any piece of side attacks sq.
func (p *Position) isAttacked(sq, side int) bool {
	var them = p.Colors[side]
	if PawnAttacks(sq, side^1)&p.Pieces[Pawn]&them != 0 {
		return true
	}
	if KnightAttacks[sq]&p.Pieces[Knight]&them != 0 {
		return true
	}
	if KingAttacks[sq]&p.Pieces[King]&them != 0 {
		return true
	}
	var occ = p.All()
	if BishopAttacks(sq, occ)&(p.Pieces[Bishop]|p.Pieces[Queen])&them != 0 {
		return true
	}
	if RookAttacks(sq, occ)&(p.Pieces[Rook]|p.Pieces[Queen])&them != 0 {
		return true
	}
	return false
}

// AttackersTo returns all pieces of both sides attacking sq, with sliders
// evaluated against the given occupancy. Passing a reduced occupancy exposes
// x-ray attackers behind pieces already removed from it.
func (p *Position) AttackersTo(sq int, occ uint64) uint64 {
	return (PawnAttacks(sq, SideBlack) & p.Pieces[Pawn] & p.Colors[SideWhite]) |
		(PawnAttacks(sq, SideWhite) & p.Pieces[Pawn] & p.Colors[SideBlack]) |
		(KnightAttacks[sq] & p.Pieces[Knight]) |
		(BishopAttacks(sq, occ) & (p.Pieces[Bishop] | p.Pieces[Queen])) |
		(RookAttacks(sq, occ) & (p.Pieces[Rook] | p.Pieces[Queen])) |
		(KingAttacks[sq] & p.Pieces[King])
}

func (p *Position) computeCheckers() uint64 {
	return p.AttackersTo(p.KingSquare(p.Side), p.All()) & p.Colors[p.Side^1]
}

// isLegal reports whether the side that just moved left its king safe.
func (p *Position) isLegal() bool {
	var mover = p.Side ^ 1
	return !p.isAttacked(p.KingSquare(mover), p.Side)
}

// IsRepetition compares the chess-relevant state of two positions; move
// counters are ignored, matching the hash.
func (p *Position) IsRepetition(other *Position) bool {
	return p.Pieces == other.Pieces &&
		p.Colors == other.Colors &&
		p.Side == other.Side &&
		p.CastleRights == other.CastleRights &&
		p.EpSquare == other.EpSquare
}

type fenPiece struct {
	piece int
	side  int
}

func newPosition(board [64]fenPiece, side, castleRights, epSquare, halfmove int) (Position, bool) {
	var p = Position{
		Side:          side,
		CastleRights:  castleRights,
		EpSquare:      epSquare,
		HalfmoveClock: halfmove,
		LastMove:      MoveEmpty,
	}
	for sq, item := range board {
		if item.piece != NoPiece {
			p.xorPiece(item.piece, item.side, sq)
		}
	}
	if p.EpSquare != SquareNone && !p.epCapturable(p.EpSquare) {
		p.EpSquare = SquareNone
	}
	p.Key = p.computeKey()
	if p.Pieces[King]&p.Colors[SideWhite] == 0 || p.Pieces[King]&p.Colors[SideBlack] == 0 {
		return Position{}, false
	}
	if !p.isLegal() {
		return Position{}, false
	}
	p.Checkers = p.computeCheckers()
	return p, true
}

// NewPositionFromFEN parses Forsyth-Edwards notation.
func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return Position{}, fmt.Errorf("bad fen %q", fen)
	}

	var board [64]fenPiece
	var sq = 0
	for _, ch := range tokens[0] {
		switch {
		case unicode.IsDigit(ch):
			sq += int(ch - '0')
		case unicode.IsLetter(ch):
			if sq >= 64 {
				return Position{}, fmt.Errorf("bad fen %q", fen)
			}
			var piece = strings.IndexRune("pnbrqk", unicode.ToLower(ch)) + Pawn
			if piece < Pawn {
				return Position{}, fmt.Errorf("bad fen %q", fen)
			}
			var side = SideBlack
			if unicode.IsUpper(ch) {
				side = SideWhite
			}
			board[FlipSquare(sq)] = fenPiece{piece: piece, side: side}
			sq++
		}
	}

	var side = SideBlack
	if tokens[1] == "w" {
		side = SideWhite
	}

	var castleRights = 0
	for _, ch := range tokens[2] {
		switch ch {
		case 'K':
			castleRights |= CastleWhiteKing
		case 'Q':
			castleRights |= CastleWhiteQueen
		case 'k':
			castleRights |= CastleBlackKing
		case 'q':
			castleRights |= CastleBlackQueen
		}
	}

	var epSquare = ParseSquare(tokens[3])

	var halfmove = 0
	if len(tokens) > 4 {
		halfmove, _ = strconv.Atoi(tokens[4])
	}

	var p, ok = newPosition(board, side, castleRights, epSquare, halfmove)
	if !ok {
		return Position{}, fmt.Errorf("illegal fen %q", fen)
	}
	return p, nil
}

// String renders the position as FEN.
func (p *Position) String() string {
	var sb strings.Builder

	var empty = 0
	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece, side = p.SideOn(sq)
		if piece == NoPiece {
			empty++
		} else {
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			var ch = "pnbrqk"[piece-Pawn]
			if side == SideWhite {
				ch = "PNBRQK"[piece-Pawn]
			}
			sb.WriteByte(ch)
		}
		if File(sq) == FileH {
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteByte('/')
			}
		}
	}

	if p.Side == SideWhite {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.CastleRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.CastleRights&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if p.CastleRights&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if p.CastleRights&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if p.CastleRights&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EpSquare == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(p.EpSquare))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock/2 + 1))

	return sb.String()
}

// MirrorPosition swaps colors and flips the board vertically; evaluation of
// the mirror must equal evaluation of the original.
func MirrorPosition(p *Position) Position {
	var board [64]fenPiece
	for sq := 0; sq < 64; sq++ {
		var piece, side = p.SideOn(sq)
		if piece != NoPiece {
			board[FlipSquare(sq)] = fenPiece{piece: piece, side: side ^ 1}
		}
	}
	var castleRights = (p.CastleRights >> 2) | ((p.CastleRights & 3) << 2)
	var epSquare = SquareNone
	if p.EpSquare != SquareNone {
		epSquare = FlipSquare(p.EpSquare)
	}
	var mirror, _ = newPosition(board, p.Side^1, castleRights, epSquare, p.HalfmoveClock)
	return mirror
}
