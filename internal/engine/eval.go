package engine

import "xiangqi/internal/xiangqi"

// Evaluator 从 side 视角给局面打分，越大对 side 越好。
// 传入的棋盘只读；需要走子的实现自己 Clone。
type Evaluator interface {
	Evaluate(side xiangqi.Side, b *xiangqi.Board) int
}

// ======= 基础子力估值 =======

// 按 PieceKind 下标
var pieceValue = [...]int{
	xiangqi.KindNone:     0,
	xiangqi.KindSoldier:  1,
	xiangqi.KindAdvisor:  3,
	xiangqi.KindElephant: 3,
	xiangqi.KindCannon:   5,
	xiangqi.KindHorse:    5,
	xiangqi.KindChariot:  10,
	xiangqi.KindGeneral:  100,
}

// PieceValue 单个棋子的子力分，从 side 视角带符号
func PieceValue(side xiangqi.Side, pc xiangqi.Piece) int {
	if pc.Empty() {
		return 0
	}
	v := pieceValue[pc.Kind()]
	if pc.Side() != side {
		return -v
	}
	return v
}

// MaterialEvaluator 把盘上所有子力分加起来：己方为正，对方为负
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(side xiangqi.Side, b *xiangqi.Board) int {
	score := 0
	for f := 0; f < xiangqi.Files; f++ {
		for r := 0; r < xiangqi.Ranks; r++ {
			score += PieceValue(side, b.At(xiangqi.Pos{File: f, Rank: r}))
		}
	}
	return score
}

// IdentityBalance 按棋子序号（兵 1 … 帅 7）求和，只用于展示
func IdentityBalance(side xiangqi.Side, b *xiangqi.Board) int {
	sum := 0
	for f := 0; f < xiangqi.Files; f++ {
		for r := 0; r < xiangqi.Ranks; r++ {
			sum += b.At(xiangqi.Pos{File: f, Rank: r}).RelativeID(side)
		}
	}
	return sum
}
