package eval

import (
	"testing"

	"rondo/pkg/chess"
)

var testFENs = []string{
	chess.InitialPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"8/k7/3p4/p2P1p2/P2P1P2/8/8/K7 w - - 0 1",
}

func TestScorePacking(t *testing.T) {
	var tests = []struct{ mg, eg int16 }{
		{0, 0}, {1, -1}, {-1, 1}, {131, 107}, {-175, -55}, {114, -1}, {-111, 6},
	}
	for _, test := range tests {
		var s = S(test.mg, test.eg)
		if s.Middle() != test.mg || s.End() != test.eg {
			t.Errorf("S(%v, %v) unpacked to (%v, %v)", test.mg, test.eg, s.Middle(), s.End())
		}
	}
	var sum = S(131, 107) + S(-175, -55)
	if sum.Middle() != 131-175 || sum.End() != 107-55 {
		t.Errorf("sum unpacked to (%v, %v)", sum.Middle(), sum.End())
	}
}

func TestEvaluateSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var p, err = chess.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var mirror = chess.MirrorPosition(&p)
		if got, want := e.Evaluate(&mirror), e.Evaluate(&p); got != want {
			t.Errorf("fen %q: mirror eval %v, want %v", fen, got, want)
		}
	}
}

func TestEvaluateStartposBalanced(t *testing.T) {
	var e = NewEvaluationService()
	var p, err = chess.NewPositionFromFEN(chess.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	if eval := e.Evaluate(&p); eval < -50 || eval > 50 {
		t.Errorf("startpos eval = %v", eval)
	}
}

func TestEvaluatePrefersMaterial(t *testing.T) {
	var e = NewEvaluationService()
	// White to move, up a clean rook.
	var p, err = chess.NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if eval := e.Evaluate(&p); eval < 200 {
		t.Errorf("rook-up eval = %v", eval)
	}
}
