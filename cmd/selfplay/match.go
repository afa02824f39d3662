package main

import (
	"fmt"
	"log"

	"xiangqi/internal/engine"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

type player struct {
	Name string
	Ctrl engine.Controller
}

type result struct {
	Status game.Status
	// Stuck 控制器拒绝给出着法时的那一方
	Stuck xiangqi.Side
	Plies int
}

func (r result) String() string {
	if r.Stuck != xiangqi.NoSide {
		return fmt.Sprintf("%v gave no move", r.Stuck)
	}
	return string(r.Status)
}

func playGame(red, black player, maxPlies int) result {
	m := game.NewManager()
	id := m.NewGame().ID
	defer m.Remove(id)

	res := result{Stuck: xiangqi.NoSide}
	for ply := 0; ply < maxPlies; ply++ {
		st, err := m.Status(id)
		if err != nil {
			log.Fatal(err)
		}
		res.Status, res.Plies = st, ply
		if st != game.StatusOngoing {
			return res
		}

		b, side, err := m.Snapshot(id)
		if err != nil {
			log.Fatal(err)
		}
		p := red
		if side == xiangqi.Black {
			p = black
		}
		mv, ok := p.Ctrl.Decide(side, b)
		if !ok {
			res.Stuck = side
			return res
		}
		if err := m.Play(id, mv.From, mv.To); err != nil {
			log.Fatalf("%s played an illegal move %v: %v", p.Name, mv, err)
		}
		log.Printf("ply %d %v [%s]: %v -> %v", ply+1, side, p.Name, mv.From, mv.To)
	}
	res.Status, res.Plies = game.StatusDraw, maxPlies
	return res
}

type tally struct {
	wins  map[string]int
	draws int
	stuck int
}

func (t *tally) add(r result, red, black player) {
	if t.wins == nil {
		t.wins = make(map[string]int)
	}
	switch {
	case r.Stuck != xiangqi.NoSide:
		t.stuck++
	case r.Status == game.StatusRedWins:
		t.wins[red.Name]++
	case r.Status == game.StatusBlackWins:
		t.wins[black.Name]++
	default:
		// 无子可动不判胜负，和步数上限一样记为和
		t.draws++
	}
}
