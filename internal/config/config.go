package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"xiangqi/internal/engine"
)

// 控制器类型
const (
	ControllerHuman  = "human"
	ControllerAI     = "ai"
	ControllerRandom = "random"
)

type Config struct {
	NodeLimit      int    `json:"node_limit"`
	MaxDepth       int    `json:"max_depth"`
	LookaheadDepth int    `json:"lookahead_depth"` // >0 时叶子估值先做一次小搜索
	ThinkMs        int    `json:"think_ms"`        // >0 时按 nodes_per_ms 折算节点预算
	NodesPerMs     int    `json:"nodes_per_ms"`
	Red            string `json:"red"`
	Black          string `json:"black"`
	Seed           int64  `json:"seed"`
}

func Default() Config {
	return Config{
		NodeLimit:      engine.DefaultNodeLimit,
		MaxDepth:       engine.DefaultMaxDepth,
		LookaheadDepth: 0,
		ThinkMs:        0,
		NodesPerMs:     200,
		Red:            ControllerHuman,
		Black:          ControllerAI,
		Seed:           1,
	}
}

// Load 读取 JSON 配置，文件里没写的字段保持默认值。path 为空时直接返回默认值
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	for _, k := range []string{c.Red, c.Black} {
		switch k {
		case ControllerHuman, ControllerAI, ControllerRandom:
		default:
			return fmt.Errorf("%w: unknown controller %q", ErrInvalidConfig, k)
		}
	}
	if c.NodeLimit < 0 || c.MaxDepth < 0 || c.LookaheadDepth < 0 || c.ThinkMs < 0 || c.NodesPerMs < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidConfig)
	}
	return nil
}

// NodeBudget 把思考时间折算成节点预算；没设时间就用 node_limit
func (c Config) NodeBudget() int {
	if c.ThinkMs > 0 && c.NodesPerMs > 0 {
		return c.ThinkMs * c.NodesPerMs
	}
	return c.NodeLimit
}

func (c Config) SearchConfig() engine.SearchConfig {
	return engine.SearchConfig{
		NodeLimit: c.NodeBudget(),
		MaxDepth:  c.MaxDepth,
	}
}

func (c Config) Evaluator() engine.Evaluator {
	var ev engine.Evaluator = engine.MaterialEvaluator{}
	if c.LookaheadDepth > 0 {
		ev = engine.NewLookaheadEvaluator(c.LookaheadDepth, ev)
	}
	return ev
}

// Controller 按类型构造控制器；human 返回 nil，由交互层自己处理
func (c Config) Controller(kind string, seed int64) engine.Controller {
	switch kind {
	case ControllerAI:
		return engine.NewAIController(engine.NewEngine(c.Evaluator(), c.SearchConfig()))
	case ControllerRandom:
		return engine.NewRandomController(seed)
	}
	return nil
}
