package engine

import (
	"log"
	"math/rand"
	"sync"

	"xiangqi/internal/xiangqi"
)

// Controller 给定一方和局面，决定走哪一步；false 表示这一方不给出着法
type Controller interface {
	Decide(side xiangqi.Side, b *xiangqi.Board) (xiangqi.Move, bool)
}

type Outcome int

const (
	OutcomeMove         Outcome = iota
	OutcomeNoLegalMoves         // 这一方全盘无合法走法
	OutcomeExhausted            // 第一层搜索就超出节点预算，没有结论
	OutcomeFinished             // 对局已结束
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMove:
		return "move"
	case OutcomeNoLegalMoves:
		return "no_legal_moves"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeFinished:
		return "finished"
	}
	return "unknown"
}

type Decision struct {
	Move    xiangqi.Move
	Outcome Outcome
	Result  SearchResult
}

// AIController 用 Engine 做迭代加深搜索
type AIController struct {
	engine *Engine
}

func NewAIController(e *Engine) *AIController {
	return &AIController{engine: e}
}

func (c *AIController) Engine() *Engine { return c.engine }

// Think 与 Decide 相同，但区分“无子可动”和“搜索预算不够”
func (c *AIController) Think(side xiangqi.Side, b *xiangqi.Board) Decision {
	if b.Finished() {
		return Decision{Outcome: OutcomeFinished}
	}
	if !b.HasLegalMove(side) {
		return Decision{Outcome: OutcomeNoLegalMoves}
	}
	res := c.engine.Search(side, b)
	if res.Exhausted() {
		log.Printf("ai(%v): node budget %d exceeded before depth 1 completed", side, c.engine.cfg.NodeLimit)
		return Decision{Outcome: OutcomeExhausted, Result: res}
	}
	if !res.HasMove {
		return Decision{Outcome: OutcomeNoLegalMoves, Result: res}
	}
	log.Printf("ai(%v): move=%v score=%d depth=%d nodes=%d time=%v",
		side, res.Move, res.Score, res.Depth, res.Nodes, res.TimeUsed)
	return Decision{Move: res.Move, Outcome: OutcomeMove, Result: res}
}

func (c *AIController) Decide(side xiangqi.Side, b *xiangqi.Board) (xiangqi.Move, bool) {
	d := c.Think(side, b)
	if d.Outcome != OutcomeMove {
		return xiangqi.Move{}, false
	}
	return d.Move, true
}

// RandomController 先均匀挑一个有合法走法的棋子，再均匀挑它的落点
type RandomController struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomController(seed int64) *RandomController {
	return &RandomController{rng: rand.New(rand.NewSource(seed))}
}

func (c *RandomController) Decide(side xiangqi.Side, b *xiangqi.Board) (xiangqi.Move, bool) {
	if b.Finished() {
		return xiangqi.Move{}, false
	}
	var froms []xiangqi.Pos
	for f := 0; f < xiangqi.Files; f++ {
		for r := 0; r < xiangqi.Ranks; r++ {
			from := xiangqi.Pos{File: f, Rank: r}
			if b.HasFriendAt(side, from) && len(b.LegalDestinations(from)) > 0 {
				froms = append(froms, from)
			}
		}
	}
	if len(froms) == 0 {
		return xiangqi.Move{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	from := froms[c.rng.Intn(len(froms))]
	tos := b.LegalDestinations(from)
	return xiangqi.Move{From: from, To: tos[c.rng.Intn(len(tos))]}, true
}
