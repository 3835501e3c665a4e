package chess

import (
	"strings"
	"testing"
)

func mustPosition(t *testing.T, fen string) Position {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func playLAN(t *testing.T, p Position, moves ...string) Position {
	t.Helper()
	for _, lan := range moves {
		var child, ok = p.MakeMoveLAN(lan)
		if !ok {
			t.Fatalf("illegal move %v in %v", lan, &p)
		}
		p = child
	}
	return p
}

func fenFields(fen string, n int) string {
	return strings.Join(strings.Fields(fen)[:n], " ")
}

func TestFENRoundTrip(t *testing.T) {
	// Move counters are not compared: like the hash, String derives the
	// fullmove number instead of tracking it.
	for _, fen := range testFENs {
		var p = mustPosition(t, fen)
		if got, want := fenFields(p.String(), 4), fenFields(fen, 4); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestKeyTransposition(t *testing.T) {
	var start = mustPosition(t, InitialPositionFEN)
	var a = playLAN(t, start, "e2e4", "e7e5", "g1f3", "b8c6")
	var b = playLAN(t, start, "g1f3", "b8c6", "e2e4", "e7e5")
	if a.Key != b.Key {
		t.Errorf("transposed positions have different keys: %v != %v", a.Key, b.Key)
	}
	if a.String() != b.String() {
		t.Errorf("transposed positions differ: %v != %v", &a, &b)
	}
}

func TestKeyIncremental(t *testing.T) {
	var p = mustPosition(t, InitialPositionFEN)
	var buffer [MaxMoves]Move
	var stack = []Position{p}
	for ply := 0; ply < 40; ply++ {
		var cur = &stack[len(stack)-1]
		var legal []Position
		var child Position
		for _, m := range GenerateMoves(buffer[:0], cur) {
			if cur.MakeMove(m, &child) {
				legal = append(legal, child)
			}
		}
		if len(legal) == 0 {
			break
		}
		var next = legal[ply%len(legal)]
		if recomputed := next.computeKey(); next.Key != recomputed {
			t.Fatalf("ply %v, after %v: incremental key %v, recomputed %v",
				ply, next.LastMove, next.Key, recomputed)
		}
		stack = append(stack, next)
	}
}

func TestKeyDistinguishesState(t *testing.T) {
	// Same piece placement, different side to move.
	var w = mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	var b = mustPosition(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if w.Key == b.Key {
		t.Error("side to move not hashed")
	}

	// Same placement, different castle rights.
	var full = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var none = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	if full.Key == none.Key {
		t.Error("castle rights not hashed")
	}

	// En passant square must affect the key only while it is set.
	var start = mustPosition(t, InitialPositionFEN)
	var capturable = playLAN(t, start, "e2e4", "a7a6", "e4e5", "d7d5")
	if capturable.EpSquare != SquareD6 {
		t.Fatalf("EpSquare = %v, want %v", capturable.EpSquare, SquareD6)
	}
	var quiet = playLAN(t, capturable, "g1f3", "b8c6", "f3g1", "c6b8")
	var noEp = mustPosition(t, "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 4 5")
	if quiet.Key != noEp.Key {
		t.Error("expired en passant square still hashed")
	}
	if capturable.Key == noEp.Key {
		t.Error("live en passant square not hashed")
	}
}

func TestEpSquareOnlyWhenCapturable(t *testing.T) {
	var start = mustPosition(t, InitialPositionFEN)

	// No black pawn attacks e3, so the double push records no ep square and
	// the key matches the same position loaded from FEN without one.
	var afterDouble = playLAN(t, start, "e2e4")
	if afterDouble.EpSquare != SquareNone {
		t.Fatalf("EpSquare = %v, want none", afterDouble.EpSquare)
	}
	var fromFEN = mustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if afterDouble.Key != fromFEN.Key {
		t.Error("phantom ep square split the key")
	}

	// With a white pawn on e5 the double push f7f5 is capturable.
	var capturable = playLAN(t, start, "e2e4", "e7e6", "e4e5", "f7f5")
	if capturable.EpSquare != SquareF6 {
		t.Errorf("EpSquare = %v, want %v", capturable.EpSquare, SquareF6)
	}

	// A FEN carrying an uncapturable ep square parses to the same position
	// as one without it.
	var phantom = mustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if phantom.EpSquare != SquareNone {
		t.Errorf("EpSquare = %v, want none", phantom.EpSquare)
	}
	if phantom.Key != fromFEN.Key {
		t.Error("phantom ep square from FEN split the key")
	}
}

func TestHalfmoveClock(t *testing.T) {
	var p = playLAN(t, mustPosition(t, InitialPositionFEN), "g1f3", "g8f6")
	if p.HalfmoveClock != 2 {
		t.Errorf("HalfmoveClock = %v, want 2", p.HalfmoveClock)
	}
	p = playLAN(t, p, "e2e4")
	if p.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock after pawn move = %v, want 0", p.HalfmoveClock)
	}
}

func TestIsRepetition(t *testing.T) {
	var start = mustPosition(t, InitialPositionFEN)
	var back = playLAN(t, start, "g1f3", "g8f6", "f3g1", "f6g8")
	if !back.IsRepetition(&start) {
		t.Error("shuffled-back position not detected as repetition")
	}
	var other = playLAN(t, start, "e2e4")
	if other.IsRepetition(&start) {
		t.Error("distinct position detected as repetition")
	}
}

func TestCastleRightsUpdates(t *testing.T) {
	var p = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	var afterKing = playLAN(t, p, "e1e2")
	if afterKing.CastleRights&(CastleWhiteKing|CastleWhiteQueen) != 0 {
		t.Error("king move did not clear castle rights")
	}

	var afterRook = playLAN(t, p, "h1h2")
	if afterRook.CastleRights&CastleWhiteKing != 0 {
		t.Error("rook move did not clear kingside right")
	}
	if afterRook.CastleRights&CastleWhiteQueen == 0 {
		t.Error("rook move cleared wrong right")
	}

	// Capturing a rook removes the opponent's right.
	var capture = mustPosition(t, "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")
	var afterCapture = playLAN(t, capture, "g2a8")
	if afterCapture.CastleRights&CastleBlackQueen != 0 {
		t.Error("rook capture did not clear queenside right")
	}
}

func TestMakeMoveRejectsIllegal(t *testing.T) {
	// The e-file knight is pinned.
	var p = mustPosition(t, "4k3/4r3/8/8/8/4N3/8/4K3 w - - 0 1")
	if _, ok := p.MakeMoveLAN("e3c4"); ok {
		t.Error("pinned knight move accepted")
	}
	if _, ok := p.MakeMoveLAN("e1d1"); !ok {
		t.Error("legal king move rejected")
	}
}

func TestMakeNullMove(t *testing.T) {
	var p = playLAN(t, mustPosition(t, InitialPositionFEN), "e2e4")
	var child Position
	p.MakeNullMove(&child)
	if child.Side != p.Side^1 {
		t.Error("null move did not flip side")
	}
	if child.EpSquare != SquareNone {
		t.Error("null move kept en passant square")
	}
	if recomputed := child.computeKey(); child.Key != recomputed {
		t.Errorf("null move key %v, recomputed %v", child.Key, recomputed)
	}
}

func TestMirrorPosition(t *testing.T) {
	for _, fen := range testFENs {
		var p = mustPosition(t, fen)
		var m = MirrorPosition(&p)
		var back = MirrorPosition(&m)
		if got, want := fenFields(back.String(), 4), fenFields(fen, 4); got != want {
			t.Errorf("double mirror of %q = %q", want, got)
		}
	}
}
