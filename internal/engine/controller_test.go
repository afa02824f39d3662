package engine

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestAIControllerDecides(t *testing.T) {
	c := NewAIController(NewEngine(MaterialEvaluator{}, SearchConfig{NodeLimit: 200_000, MaxDepth: 2}))
	b := tacticalPosition()
	mv, ok := c.Decide(xiangqi.Red, b)
	if !ok {
		t.Fatalf("expected a decision")
	}
	if mv.From != pos(0, 0) || mv.To != pos(0, 5) {
		t.Fatalf("expected the capture, got %v", mv)
	}
	if err := b.ApplyChecked(mv.From, mv.To); err != nil {
		t.Fatalf("decided move must be legal: %v", err)
	}
}

func TestAIControllerNoLegalMoves(t *testing.T) {
	b := xiangqi.NewEmptyBoard()
	place(b, 4, 9, xiangqi.Black, xiangqi.KindGeneral)
	c := NewAIController(NewEngine(MaterialEvaluator{}, SearchConfig{NodeLimit: 1000}))
	d := c.Think(xiangqi.Red, b)
	if d.Outcome != OutcomeNoLegalMoves {
		t.Fatalf("expected no_legal_moves, got %v", d.Outcome)
	}
	if _, ok := c.Decide(xiangqi.Red, b); ok {
		t.Fatalf("Decide must return false without legal moves")
	}
}

func TestAIControllerExhausted(t *testing.T) {
	c := NewAIController(NewEngine(MaterialEvaluator{}, SearchConfig{NodeLimit: 1}))
	b := xiangqi.NewBoard()
	d := c.Think(xiangqi.Red, b)
	if d.Outcome != OutcomeExhausted {
		t.Fatalf("expected exhausted, got %v", d.Outcome)
	}
	if d.Outcome == OutcomeNoLegalMoves || !b.HasLegalMove(xiangqi.Red) {
		t.Fatalf("exhausted must not be confused with having no moves")
	}
	if _, ok := c.Decide(xiangqi.Red, b); ok {
		t.Fatalf("an exhausted search must not produce a default move")
	}
}

func TestRandomControllerLegalAndSeeded(t *testing.T) {
	b := xiangqi.NewBoard()
	a, c := NewRandomController(42), NewRandomController(42)
	for i := 0; i < 20; i++ {
		m1, ok1 := a.Decide(xiangqi.Red, b)
		m2, ok2 := c.Decide(xiangqi.Red, b)
		if !ok1 || !ok2 {
			t.Fatalf("initial board always has moves")
		}
		if m1 != m2 {
			t.Fatalf("same seed must give the same moves: %v vs %v", m1, m2)
		}
		if !b.IsLegal(m1.From, m1.To) {
			t.Fatalf("random move %v is illegal", m1)
		}
	}
}

func TestRandomControllerNoPieces(t *testing.T) {
	b := xiangqi.NewEmptyBoard()
	place(b, 4, 9, xiangqi.Black, xiangqi.KindGeneral)
	if _, ok := NewRandomController(1).Decide(xiangqi.Red, b); ok {
		t.Fatalf("no pieces, no move")
	}
}

func TestControllersSatisfyInterface(t *testing.T) {
	var _ Controller = (*AIController)(nil)
	var _ Controller = (*RandomController)(nil)
}
