package engine

import (
	"math"
	"time"

	"xiangqi/internal/xiangqi"
)

// 搜索配置
type SearchConfig struct {
	NodeLimit int // 每一轮迭代允许访问的节点数上限
	MaxDepth  int // 迭代加深的最大深度（0 表示用默认值）
}

const (
	DefaultNodeLimit = 200_000
	DefaultMaxDepth  = 32
)

func (c SearchConfig) withDefaults() SearchConfig {
	if c.NodeLimit <= 0 {
		c.NodeLimit = DefaultNodeLimit
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return c
}

// 每一轮迭代的统计
type IterationStat struct {
	Depth   int
	Nodes   int
	Move    xiangqi.Move
	HasMove bool
	Score   int
}

// 搜索结果
type SearchResult struct {
	Move       xiangqi.Move // 最深一轮完整迭代给出的着法
	HasMove    bool
	Score      int           // 从搜索方视角的分数
	Depth      int           // 完整跑完的最深深度，0 表示第一层就超出节点预算
	Nodes      int           // 所有迭代的节点总数（含中断的那一轮）
	Iterations []IterationStat
	TimeUsed   time.Duration
}

// Exhausted 连一层搜索都没跑完
func (r SearchResult) Exhausted() bool { return r.Depth == 0 }

type decision struct {
	move    xiangqi.Move
	hasMove bool
	score   int
}

// searcher 在同一块棋盘上原地走子/悔棋，不为每个节点复制棋盘。
// 返回 ok=false 表示节点数超限，整棵树立即放弃。
type searcher struct {
	b     *xiangqi.Board
	side  xiangqi.Side // 极大方，也是估值视角
	eval  Evaluator
	nodes int
	limit int

	horizon bool // 是否有叶子是因为深度用完才停下的
}

func (s *searcher) leaf() decision {
	return decision{score: s.eval.Evaluate(s.side, s.b)}
}

// 极大层：轮到 s.side 走
func (s *searcher) maxNode(depth, alpha, beta int) (decision, bool) {
	if s.nodes > s.limit {
		return decision{}, false
	}
	s.nodes++
	if s.b.Finished() {
		return s.leaf(), true
	}
	if depth <= 0 {
		s.horizon = true
		return s.leaf(), true
	}

	best := decision{score: math.MinInt}
moves:
	for f := 0; f < xiangqi.Files; f++ {
		for r := 0; r < xiangqi.Ranks; r++ {
			from := xiangqi.Pos{File: f, Rank: r}
			if !s.b.HasFriendAt(s.side, from) {
				continue
			}
			for _, to := range s.b.LegalDestinations(from) {
				s.b.ApplyUnchecked(from, to)
				child, ok := s.minNode(depth-1, alpha, beta)
				mustUndo(s.b)
				if !ok {
					return decision{}, false
				}
				if !best.hasMove || child.score > best.score {
					best = decision{move: xiangqi.Move{From: from, To: to}, hasMove: true, score: child.score}
				}
				if best.score > alpha {
					alpha = best.score
				}
				if alpha >= beta {
					break moves
				}
			}
		}
	}
	if !best.hasMove {
		// 无子可动：沿用当前局面的静态分
		return s.leaf(), true
	}
	return best, true
}

// 极小层：轮到对手走，估值视角不变
func (s *searcher) minNode(depth, alpha, beta int) (decision, bool) {
	if s.nodes > s.limit {
		return decision{}, false
	}
	s.nodes++
	if s.b.Finished() {
		return s.leaf(), true
	}
	if depth <= 0 {
		s.horizon = true
		return s.leaf(), true
	}

	opp := s.side.Other()
	best := decision{score: math.MaxInt}
moves:
	for f := 0; f < xiangqi.Files; f++ {
		for r := 0; r < xiangqi.Ranks; r++ {
			from := xiangqi.Pos{File: f, Rank: r}
			if !s.b.HasFriendAt(opp, from) {
				continue
			}
			for _, to := range s.b.LegalDestinations(from) {
				s.b.ApplyUnchecked(from, to)
				child, ok := s.maxNode(depth-1, alpha, beta)
				mustUndo(s.b)
				if !ok {
					return decision{}, false
				}
				if !best.hasMove || child.score < best.score {
					best = decision{move: xiangqi.Move{From: from, To: to}, hasMove: true, score: child.score}
				}
				if best.score < beta {
					beta = best.score
				}
				if alpha >= beta {
					break moves
				}
			}
		}
	}
	if !best.hasMove {
		return s.leaf(), true
	}
	return best, true
}

// 搜索自己的 apply/undo 一一对应，悔棋失败说明核心逻辑有 bug
func mustUndo(b *xiangqi.Board) {
	if err := b.Undo(); err != nil {
		panic("engine: unmatched undo: " + err.Error())
	}
}
