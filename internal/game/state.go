package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusRedWins   Status = "red_wins"
	StatusBlackWins Status = "black_wins"
	StatusNoMoves   Status = "no_moves" // 轮到的一方无子可动
	StatusDraw      Status = "draw"     // 步数上限，没有赢家
)

type GameState struct {
	ID        string
	Board     *xiangqi.Board
	ToMove    xiangqi.Side
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) status() Status {
	if g.Board.Finished() {
		w, ok := g.Board.Winner()
		switch {
		case !ok:
			return StatusDraw
		case w == xiangqi.Red:
			return StatusRedWins
		default:
			return StatusBlackWins
		}
	}
	if !g.Board.HasLegalMove(g.ToMove) {
		return StatusNoMoves
	}
	return StatusOngoing
}
