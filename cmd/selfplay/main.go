package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"xiangqi/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to JSON config file")
	red := flag.String("red", "ai", "first controller (red in odd games): ai | random")
	black := flag.String("black", "random", "second controller: ai | random")
	nodes := flag.Int("nodes", 0, "search node limit per move")
	depth := flag.Int("depth", 0, "max iterative deepening depth")
	lookahead := flag.Int("lookahead", -1, "leaf lookahead depth")
	totalGames := flag.Int("games", 1, "number of games to play, colours alternate")
	maxPlies := flag.Int("maxplies", 400, "stop a game after this many plies and count it as a draw")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Red, cfg.Black = *red, *black
	if *nodes > 0 {
		cfg.NodeLimit = *nodes
	}
	if *depth > 0 {
		cfg.MaxDepth = *depth
	}
	if *lookahead >= 0 {
		cfg.LookaheadDepth = *lookahead
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Red == config.ControllerHuman || cfg.Black == config.ControllerHuman {
		log.Fatal("selfplay needs two engine controllers")
	}

	a := player{Name: "A:" + cfg.Red, Ctrl: cfg.Controller(cfg.Red, cfg.Seed)}
	b := player{Name: "B:" + cfg.Black, Ctrl: cfg.Controller(cfg.Black, cfg.Seed+1)}

	var t tally
	for g := 0; g < *totalGames; g++ {
		first, second := a, b
		if g%2 == 1 {
			first, second = b, a
		}
		fmt.Printf("\n=== Game %d: Red [%s] vs Black [%s] ===\n", g+1, first.Name, second.Name)
		res := playGame(first, second, *maxPlies)
		fmt.Printf("Result: %s (%d plies)\n", res, res.Plies)
		t.add(res, first, second)
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, t.wins[a.Name])
	fmt.Printf("%s: %d\n", b.Name, t.wins[b.Name])
	fmt.Printf("Draws: %d\n", t.draws)
	fmt.Printf("No decision: %d\n", t.stuck)
	os.Exit(0)
}
