package main

import (
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial position)")
	flag.Parse()

	b, side := xiangqi.NewBoard(), xiangqi.Red
	if *fen != "" {
		var err error
		if b, side, err = xiangqi.Decode(*fen); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Print(b)
	fmt.Println("FEN:", xiangqi.Encode(b, side))
	fmt.Println("Legal moves:", len(b.LegalMoves(side)))
	fmt.Println("Material:", engine.MaterialEvaluator{}.Evaluate(side, b))
	fmt.Println("Identity:", engine.IdentityBalance(side, b))
	if b.InCheck(side) {
		fmt.Println("In check")
	}
}
