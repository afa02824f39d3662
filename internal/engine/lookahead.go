package engine

import (
	"math"

	"xiangqi/internal/xiangqi"
)

// LookaheadEvaluator 先在副本上做 Depth 层全宽 negamax，再用 Base 给叶子打分。
// 主搜索只有一两层时，用它让廉价的静态估值“看远一点”。
type LookaheadEvaluator struct {
	Base  Evaluator
	Depth int
}

func NewLookaheadEvaluator(depth int, base Evaluator) *LookaheadEvaluator {
	return &LookaheadEvaluator{Base: base, Depth: depth}
}

func (e *LookaheadEvaluator) Evaluate(side xiangqi.Side, b *xiangqi.Board) int {
	// 不能动外层搜索的棋盘，否则会弄乱它的悔棋栈
	return e.negamax(e.Depth, side, b.Clone())
}

func (e *LookaheadEvaluator) negamax(depth int, side xiangqi.Side, b *xiangqi.Board) int {
	if depth <= 0 || b.Finished() {
		return e.Base.Evaluate(side, b)
	}
	best := math.MinInt
	for f := 0; f < xiangqi.Files; f++ {
		for r := 0; r < xiangqi.Ranks; r++ {
			from := xiangqi.Pos{File: f, Rank: r}
			if !b.HasFriendAt(side, from) {
				continue
			}
			for _, to := range b.LegalDestinations(from) {
				b.ApplyUnchecked(from, to)
				score := -e.negamax(depth-1, side.Other(), b)
				mustUndo(b)
				if score > best {
					best = score
				}
			}
		}
	}
	if best == math.MinInt {
		// 无子可动
		return e.Base.Evaluate(side, b)
	}
	return best
}
