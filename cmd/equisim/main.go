// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// Example main program for exercising the equicore module: plays
// a configurable number of self-play games between two equity
// robots and reports the win tally.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/torfi/equicore"
)

func simulateGame(lexicon *equicore.Lexicon, leaves *equicore.LeaveTable, tileSet *equicore.TileSet, verbose bool) (scoreA, scoreB equicore.Equity) {
	p := func(format string, a ...interface{}) {}
	if verbose {
		p = func(format string, a ...interface{}) { fmt.Printf(format, a...) }
	}

	game := equicore.NewGame(tileSet, lexicon, leaves)
	game.SetPlayerNames("Robot A", "Robot B")
	robotA := equicore.NewEquityRobot()
	robotB := equicore.NewEquityRobot()
	p("%v\n", game)

	for !game.IsOver() {
		state := game.State()
		var move *equicore.Move
		if game.PlayerToMove() == 0 {
			move, _ = robotA.GenerateMove(state)
		} else {
			move, _ = robotB.GenerateMove(state)
		}
		game.Apply(move)
		p("%v\n", game)
	}
	p("Game over!\n\n")
	return game.Scores[0], game.Scores[1]
}

func main() {
	dictStem := flag.String("d", "", "Path stem for the lexicon/leave file pair (<stem>.dawg, <stem>.leaves)")
	num := flag.Int("n", 10, "Number of games to simulate")
	quiet := flag.Bool("q", false, "Suppress output of game state and moves")
	flag.Parse()

	lexPath := *dictStem + ".dawg"
	leavesPath := *dictStem + ".leaves"
	if *dictStem == "" {
		cfg, err := equicore.LoadEngineConfig()
		if err != nil {
			log.Fatalf("equisim: %v", err)
		}
		lexPath = cfg.LexiconPath
		leavesPath = cfg.LeavesPath
	}

	lexData, err := os.ReadFile(lexPath)
	if err != nil {
		log.Fatalf("equisim: reading lexicon %q: %v", lexPath, err)
	}
	lexicon, err := equicore.LoadLexicon(lexData)
	if err != nil {
		log.Fatalf("equisim: parsing lexicon %q: %v", lexPath, err)
	}

	var leaves *equicore.LeaveTable
	if leavesPath != "" {
		if data, err := os.ReadFile(leavesPath); err == nil {
			leaves, err = equicore.LoadLeaveTable(data)
			if err != nil {
				log.Fatalf("equisim: parsing leave table %q: %v", leavesPath, err)
			}
		}
	}

	var winsA, winsB int
	for i := 0; i < *num; i++ {
		scoreA, scoreB := simulateGame(lexicon, leaves, equicore.EnglishTileSet, !*quiet)
		switch {
		case scoreA > scoreB:
			winsA++
		case scoreB > scoreA:
			winsB++
		}
	}
	fmt.Printf("%d games were played using %q.\n"+
		"Robot A won %d games, and Robot B won %d games; %d games were draws.\n",
		*num, lexPath, winsA, winsB, *num-winsA-winsB)
}
