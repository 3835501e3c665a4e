package chess

import (
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

var testFENs = []string{
	InitialPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	"8/8/8/8/k2Pp2Q/8/8/3K4 b - d3 0 1",
	"8/2k1p3/3pP3/3P2K1/8/8/8/8 w - - 0 1",
	"8/P1k5/K7/8/8/8/8/8 w - - 0 1",
	"rnbqkb1r/ppppp1pp/7n/4Pp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
}

func legalMoveNames(p *Position) []string {
	var names []string
	for _, m := range GenerateLegalMoves(p) {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}

// Walks each test position several plies deep comparing the full legal move
// set against dragontoothmg at every step.
func TestLegalMovesMatchReference(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var board = dragontoothmg.ParseFen(fen)
		for ply := 0; ply < 6; ply++ {
			var got = legalMoveNames(&p)
			var refMoves = board.GenerateLegalMoves()
			var want []string
			for _, m := range refMoves {
				want = append(want, m.String())
			}
			sort.Strings(want)
			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Fatalf("fen %q ply %v:\n got %v\nwant %v", fen, ply, got, want)
			}
			if len(got) == 0 {
				break
			}
			var lan = got[len(got)/2]
			var child, ok = p.MakeMoveLAN(lan)
			if !ok {
				t.Fatalf("fen %q: failed to apply %v", fen, lan)
			}
			p = child
			var applied = false
			for _, m := range refMoves {
				if m.String() == lan {
					board.Apply(m)
					applied = true
					break
				}
			}
			if !applied {
				t.Fatalf("fen %q: reference has no move %v", fen, lan)
			}
		}
	}
}

// The two generation phases must partition the pseudo-legal move set:
// captures and promotions in the first, everything else in the second.
func TestGenerationPhases(t *testing.T) {
	var buffer [MaxMoves]Move
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range GenerateCaptures(buffer[:0], &p) {
			if m.Captured() == NoPiece && m.Promotion() == NoPiece {
				t.Errorf("fen %q: quiet move %v in capture phase", fen, m)
			}
		}
		for _, m := range GenerateQuiets(buffer[:0], &p) {
			if m.Captured() != NoPiece || m.Promotion() != NoPiece {
				t.Errorf("fen %q: move %v in quiet phase", fen, m)
			}
		}
		var seen = make(map[Move]bool)
		for _, m := range GenerateMoves(buffer[:0], &p) {
			if seen[m] {
				t.Errorf("fen %q: duplicate move %v", fen, m)
			}
			seen[m] = true
		}
	}
}

func TestGenerateMovesInCheck(t *testing.T) {
	// Double check: only king moves are legal.
	var p, err = NewPositionFromFEN("4k3/8/4r3/8/8/6b1/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsCheck() {
		t.Fatal("expected check")
	}
	for _, m := range GenerateLegalMoves(&p) {
		if m.Piece() != King {
			t.Errorf("non-king move %v legal in double check", m)
		}
	}
}
