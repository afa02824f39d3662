package engine

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestMaterialInitialIsBalanced(t *testing.T) {
	b := xiangqi.NewBoard()
	var ev MaterialEvaluator
	if s := ev.Evaluate(xiangqi.Red, b); s != 0 {
		t.Fatalf("initial red score: %d", s)
	}
	if s := ev.Evaluate(xiangqi.Black, b); s != 0 {
		t.Fatalf("initial black score: %d", s)
	}
}

func TestMaterialValues(t *testing.T) {
	b := xiangqi.NewBoard()
	b.Place(pos(0, 9), xiangqi.NoPiece) // 黑车
	b.Place(pos(1, 7), xiangqi.NoPiece) // 黑炮
	b.Place(pos(0, 3), xiangqi.NoPiece) // 红兵
	var ev MaterialEvaluator
	if s := ev.Evaluate(xiangqi.Red, b); s != 14 {
		t.Fatalf("red score: got=%d want=14", s)
	}
}

func TestMaterialAntisymmetric(t *testing.T) {
	b := xiangqi.NewBoard()
	rc := NewRandomController(7)
	side := xiangqi.Red
	var ev MaterialEvaluator
	for ply := 0; ply < 80 && !b.Finished(); ply++ {
		mv, ok := rc.Decide(side, b)
		if !ok {
			break
		}
		b.ApplyUnchecked(mv.From, mv.To)
		if r, k := ev.Evaluate(xiangqi.Red, b), ev.Evaluate(xiangqi.Black, b); r != -k {
			t.Fatalf("ply %d: red=%d black=%d", ply, r, k)
		}
		side = side.Other()
	}
}

func TestLookaheadDepthZeroIsBase(t *testing.T) {
	b := tacticalPosition()
	la := NewLookaheadEvaluator(0, MaterialEvaluator{})
	if got, want := la.Evaluate(xiangqi.Red, b), (MaterialEvaluator{}).Evaluate(xiangqi.Red, b); got != want {
		t.Fatalf("depth 0 lookahead: got=%d want=%d", got, want)
	}
}

func TestLookaheadSeesCapture(t *testing.T) {
	b := tacticalPosition()
	la := NewLookaheadEvaluator(1, MaterialEvaluator{})
	if got := la.Evaluate(xiangqi.Red, b); got != 9 {
		t.Fatalf("one-ply lookahead for red: got=%d want=9", got)
	}
	// 黑方走一步：最好也只能维持 -4
	if got := la.Evaluate(xiangqi.Black, b); got != -4 {
		t.Fatalf("one-ply lookahead for black: got=%d want=-4", got)
	}
	if b.MoveCount() != 0 || len(b.History()) != 0 {
		t.Fatalf("lookahead must work on a clone")
	}
}

func TestLookaheadMatchesNegatedMinimax(t *testing.T) {
	b := smallPosition()
	for depth := 1; depth <= 2; depth++ {
		la := NewLookaheadEvaluator(depth, MaterialEvaluator{})
		want := fullMinimax(b.Clone(), xiangqi.Red, MaterialEvaluator{}, depth, true)
		if got := la.Evaluate(xiangqi.Red, b); got != want {
			t.Fatalf("depth %d: negamax=%d minimax=%d", depth, got, want)
		}
	}
}

func TestLookaheadNoMovesFallsBackToBase(t *testing.T) {
	b := xiangqi.NewEmptyBoard()
	place(b, 4, 9, xiangqi.Black, xiangqi.KindGeneral)
	place(b, 0, 9, xiangqi.Black, xiangqi.KindChariot)
	la := NewLookaheadEvaluator(3, MaterialEvaluator{})
	if got := la.Evaluate(xiangqi.Red, b); got != -110 {
		t.Fatalf("red without pieces: got=%d want=-110", got)
	}
}

func TestLookaheadInsideSearch(t *testing.T) {
	// 主搜索只有一层，叶子估值再往下看一层
	e := NewEngine(NewLookaheadEvaluator(1, MaterialEvaluator{}), SearchConfig{NodeLimit: 100_000, MaxDepth: 1})
	b := tacticalPosition()
	res := e.Search(xiangqi.Red, b)
	if !res.HasMove || res.Depth != 1 {
		t.Fatalf("expected a depth-1 move, got %+v", res)
	}
	// 叶子再看一层：车先到 (3,0)，下一步沿 3 路直取黑将
	if res.Score != 104 {
		t.Fatalf("score with lookahead leaves: got=%d want=104", res.Score)
	}
	plain := NewEngine(MaterialEvaluator{}, SearchConfig{NodeLimit: 100_000, MaxDepth: 1}).Search(xiangqi.Red, b)
	if plain.Score != 9 {
		t.Fatalf("plain one-ply score: got=%d want=9", plain.Score)
	}
	if b.MoveCount() != 0 {
		t.Fatalf("caller board mutated")
	}
}

func TestIdentityBalance(t *testing.T) {
	b := xiangqi.NewBoard()
	if IdentityBalance(xiangqi.Red, b) != 0 {
		t.Fatalf("initial identity balance must be 0")
	}
	b.Place(pos(4, 9), xiangqi.NoPiece)
	if got := IdentityBalance(xiangqi.Red, b); got != 7 {
		t.Fatalf("identity balance without black general: %d", got)
	}
}
