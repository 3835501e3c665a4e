package engine

import (
	"testing"

	"rondo/pkg/chess"
)

func findLAN(t *testing.T, p *chess.Position, lan string) chess.Move {
	t.Helper()
	for _, m := range chess.GenerateLegalMoves(p) {
		if m.String() == lan {
			return m
		}
	}
	t.Fatalf("move %v not found in %v", lan, p)
	return chess.MoveEmpty
}

func TestSeeGE(t *testing.T) {
	var tests = []struct {
		fen  string
		lan  string
		good bool
	}{
		// The two classic swap-algorithm positions.
		{"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1", "e1e5", true},
		{"1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1", "d3e5", false},
		// Undefended pawn.
		{"k7/8/3p4/8/8/3R4/8/K7 w - - 0 1", "d3d6", true},
		// Same exchange, but the pawn is defended by a rook.
		{"k7/3r4/3p4/8/8/3R4/8/K7 w - - 0 1", "d3d6", false},
		// A second attacker turns it back into a win.
		{"k7/3r4/3p4/8/8/3R4/3R4/K7 w - - 0 1", "d3d6", true},
		// Pawn takes knight, even if the pawn is then lost.
		{"k3r3/8/8/4n3/3P4/8/8/K7 w - - 0 1", "d4e5", true},
	}
	for _, test := range tests {
		var p, err = chess.NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var move = findLAN(t, &p, test.lan)
		if got := seeGEZero(&p, move); got != test.good {
			t.Errorf("fen %q move %v: seeGEZero = %v, want %v", test.fen, test.lan, got, test.good)
		}
	}
}

func TestSeeGEThreshold(t *testing.T) {
	var p, err = chess.NewPositionFromFEN("1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var move = findLAN(t, &p, "e1e5")
	if !SeeGE(&p, move, pieceValuesSEE[chess.Pawn]) {
		t.Error("winning a pawn should satisfy a pawn threshold")
	}
	if SeeGE(&p, move, pieceValuesSEE[chess.Rook]) {
		t.Error("winning a pawn should not satisfy a rook threshold")
	}
}
