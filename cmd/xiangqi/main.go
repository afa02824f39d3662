package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"xiangqi/internal/config"
	"xiangqi/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "path to JSON config file")
	red := flag.String("red", "", "red controller: human | ai | random")
	black := flag.String("black", "", "black controller: human | ai | random")
	nodes := flag.Int("nodes", 0, "search node limit per move")
	depth := flag.Int("depth", 0, "max iterative deepening depth")
	lookahead := flag.Int("lookahead", -1, "leaf lookahead depth (0 = plain material)")
	thinkMs := flag.Int("think", 0, "think time in ms, converted to a node budget")
	logPath := flag.String("log", "xiangqi.log", "log file (the terminal is used by the board)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 命令行覆盖配置文件
	if *red != "" {
		cfg.Red = *red
	}
	if *black != "" {
		cfg.Black = *black
	}
	if *nodes > 0 {
		cfg.NodeLimit = *nodes
	}
	if *depth > 0 {
		cfg.MaxDepth = *depth
	}
	if *lookahead >= 0 {
		cfg.LookaheadDepth = *lookahead
	}
	if *thinkMs > 0 {
		cfg.ThinkMs = *thinkMs
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	f, err := tea.LogToFile(*logPath, "xiangqi")
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer f.Close()

	log.Printf("start: red=%s black=%s nodes=%d depth=%d lookahead=%d",
		cfg.Red, cfg.Black, cfg.NodeBudget(), cfg.MaxDepth, cfg.LookaheadDepth)
	if err := tui.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
