package xiangqi

import (
	"errors"
	"testing"
)

const initialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

func TestEncodeInitial(t *testing.T) {
	if got := Encode(NewBoard(), Red); got != initialFEN {
		t.Fatalf("initial FEN:\n got=%s\nwant=%s", got, initialFEN)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	b := NewBoard()
	b.ApplyUnchecked(Pos{File: 1, Rank: 2}, Pos{File: 4, Rank: 2})
	fen := Encode(b, Black)

	decoded, side, err := Decode(fen)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if side != Black {
		t.Fatalf("side to move: got=%v want=black", side)
	}
	if decoded.squares != b.squares {
		t.Fatalf("decoded squares differ from source")
	}
	if decoded.PieceCount() != 32 || decoded.MoveCount() != 0 || len(decoded.History()) != 0 {
		t.Fatalf("decoded board must be fresh: pieces=%d moves=%d", decoded.PieceCount(), decoded.MoveCount())
	}
	if again := Encode(decoded, side); again != fen {
		t.Fatalf("re-encode mismatch: %s vs %s", again, fen)
	}
}

func TestDecodeInvalid(t *testing.T) {
	bad := []string{
		"",
		"rnbakabnr/9/1c5c1 w",
		"rnbakabnx/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w",
		"rnbakabnr/8/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w",
		"rnbakabnrr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w",
		initialFEN[:len(initialFEN)-1] + "x",
	}
	for _, fen := range bad {
		if _, _, err := Decode(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("Decode(%q): expected ErrInvalidFEN, got %v", fen, err)
		}
	}
}
