package main

import (
	"testing"

	"xiangqi/internal/engine"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

func TestPlayGameStopsAtPlyLimit(t *testing.T) {
	red := player{Name: "r", Ctrl: engine.NewRandomController(1)}
	black := player{Name: "b", Ctrl: engine.NewRandomController(2)}
	res := playGame(red, black, 6)
	if res.Stuck != xiangqi.NoSide {
		t.Fatalf("random players always have a move early on")
	}
	if res.Status != game.StatusDraw && res.Status != game.StatusRedWins && res.Status != game.StatusBlackWins {
		t.Fatalf("unexpected status %s", res.Status)
	}
	if res.Status == game.StatusDraw && res.Plies != 6 {
		t.Fatalf("ply limit: got %d", res.Plies)
	}
}

type refuse struct{}

func (refuse) Decide(xiangqi.Side, *xiangqi.Board) (xiangqi.Move, bool) { return xiangqi.Move{}, false }

func TestPlayGameControllerGivesNoMove(t *testing.T) {
	res := playGame(player{Name: "r", Ctrl: refuse{}}, player{Name: "b", Ctrl: refuse{}}, 10)
	if res.Stuck != xiangqi.Red || res.Plies != 0 {
		t.Fatalf("red should be stuck at ply 0: %+v", res)
	}
}

func TestTally(t *testing.T) {
	a, b := player{Name: "a"}, player{Name: "b"}
	var tl tally
	tl.add(result{Status: game.StatusRedWins, Stuck: xiangqi.NoSide}, a, b)
	tl.add(result{Status: game.StatusRedWins, Stuck: xiangqi.NoSide}, b, a)
	tl.add(result{Status: game.StatusBlackWins, Stuck: xiangqi.NoSide}, a, b)
	tl.add(result{Status: game.StatusDraw, Stuck: xiangqi.NoSide}, a, b)
	tl.add(result{Status: game.StatusOngoing, Stuck: xiangqi.Black}, a, b)
	if tl.wins["a"] != 1 || tl.wins["b"] != 2 || tl.draws != 1 || tl.stuck != 1 {
		t.Fatalf("tally: %+v", tl)
	}
}
