package engine

import (
	"math"
	"time"

	"xiangqi/internal/xiangqi"
)

type Engine struct {
	eval Evaluator
	cfg  SearchConfig
}

func NewEngine(eval Evaluator, cfg SearchConfig) *Engine {
	if eval == nil {
		eval = MaterialEvaluator{}
	}
	return &Engine{eval: eval, cfg: cfg.withDefaults()}
}

func (e *Engine) Config() SearchConfig { return e.cfg }

func (e *Engine) Evaluator() Evaluator { return e.eval }

// searchDepth 在 b 上原地跑一次固定深度的 alpha-beta，返回时 b 已复原
func (e *Engine) searchDepth(side xiangqi.Side, b *xiangqi.Board, depth int) (decision, *searcher, bool) {
	s := &searcher{
		b:     b,
		side:  side,
		eval:  e.eval,
		limit: e.cfg.NodeLimit,
	}
	d, ok := s.maxNode(depth, math.MinInt, math.MaxInt)
	return d, s, ok
}

// SearchDepth 固定深度搜索，不做迭代加深
func (e *Engine) SearchDepth(side xiangqi.Side, b *xiangqi.Board, depth int) SearchResult {
	start := time.Now()
	d, s, ok := e.searchDepth(side, b.Clone(), depth)
	nodes := s.nodes
	res := SearchResult{Nodes: nodes, TimeUsed: time.Since(start)}
	if !ok {
		return res
	}
	res.Move, res.HasMove, res.Score, res.Depth = d.move, d.hasMove, d.score, depth
	res.Iterations = []IterationStat{{Depth: depth, Nodes: nodes, Move: d.move, HasMove: d.hasMove, Score: d.score}}
	return res
}

// Search 迭代加深：每轮从原局面重新搜，节点计数清零，直到某一轮超出节点预算。
// 返回最后一轮完整跑完的结果，从不暴露跑到一半的那一轮。
func (e *Engine) Search(side xiangqi.Side, b *xiangqi.Board) SearchResult {
	start := time.Now()
	work := b.Clone()

	var res SearchResult
	for depth := 1; depth <= e.cfg.MaxDepth; depth++ {
		d, s, ok := e.searchDepth(side, work, depth)
		nodes := s.nodes
		res.Nodes += nodes
		if !ok {
			break
		}
		res.Move, res.HasMove, res.Score, res.Depth = d.move, d.hasMove, d.score, depth
		res.Iterations = append(res.Iterations, IterationStat{
			Depth:   depth,
			Nodes:   nodes,
			Move:    d.move,
			HasMove: d.hasMove,
			Score:   d.score,
		})
		// 没招可走，或者没有任何叶子碰到深度上限（整棵树已搜穿），再加深也不会变
		if !d.hasMove || !s.horizon {
			break
		}
	}
	res.TimeUsed = time.Since(start)
	return res
}
