// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/ucell/automaton"
	"github.com/ezrec/ucell/runner"
	"github.com/ezrec/ucell/script"
)

func main() {
	var compile string
	var cells int
	var rule int
	var steps int
	var history int
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".cell script to run")
	flag.IntVar(&cells, "n", script.DEFAULT_CELLS, "Cells in the row")
	flag.IntVar(&rule, "r", script.DEFAULT_RULE, "Wolfram rule code")
	flag.IntVar(&steps, "g", script.DEFAULT_STEPS, "Generations to run")
	flag.IntVar(&history, "p", 0, "Prior generations remembered for cycle detection")
	flag.StringVar(&output, "o", "-", "Frame output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var run *script.Run

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		par := &script.Parser{Verbose: verbose}
		run, err = par.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		// No script: run the flags with a single live center cell.
		if rule < 0 || rule > 255 {
			log.Fatalf("rule %v: not a Wolfram code", rule)
		}

		run = &script.Run{
			Cells:   cells,
			Rule:    automaton.Wolfram(uint8(rule)),
			Steps:   steps,
			Seeds:   []int{cells / 2},
			History: history,
			Alive:   script.DEFAULT_ALIVE,
			Dead:    script.DEFAULT_DEAD,
		}
		if err := run.Validate(); err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	rn := runner.New(run)
	rn.Verbose = verbose

	if output == "-" {
		rn.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		rn.Output = ouf
	}

	err := rn.Reset()
	if err != nil {
		log.Fatal(err)
	}

	for done, err := rn.Tick(); !done; done, err = rn.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}

	if verbose {
		log.Printf("%v: %v generations, %v cells flipped", rn.Status, rn.Generation, rn.Power())
	}
}
