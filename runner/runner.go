// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package runner

import (
	"io"
	"log"

	"github.com/ezrec/ucell/automaton"
	"github.com/ezrec/ucell/script"
)

// Runner executes a scripted automaton run: it owns the row, steps it
// one generation per Tick, renders a frame per generation, and halts
// when the step budget runs out or the row revisits a remembered
// state.
type Runner struct {
	Verbose bool      // If set, enables verbose logging.
	Output  io.Writer // Frame destination; nil discards frames.

	Run *script.Run           // Run configuration.
	Row *automaton.Row[uint8] // Current generation.

	Generation int     // Generations completed since Reset.
	Status     Status  // Lifecycle state of the run.
	Cycle      int     // Detected cycle period, 0 when none.
	History    History // Recent generations, for cycle detection.
}

// New creates a runner for a run configuration.
func New(run *script.Run) (rn *Runner) {
	rn = &Runner{
		Run: run,
	}

	return
}

// Reset builds the starting generation from the run configuration and
// renders it.
func (rn *Runner) Reset() (err error) {
	rn.Row, err = rn.Run.NewRow()
	if err != nil {
		return
	}

	rn.Generation = 0
	rn.Status = STATUS_RUNNING
	rn.Cycle = 0

	rn.History.Capacity = rn.Run.History
	rn.History.Reset()
	rn.History.Push(rn.Row.Blocks)

	if rn.Verbose {
		log.Printf("reset: %v cells, %v, %v steps\n", rn.Run.Cells, rn.Run.Rule, rn.Run.Steps)
	}

	err = rn.frame()

	return
}

// Tick advances the run one generation. done reports a halted run.
func (rn *Runner) Tick() (done bool, err error) {
	if rn.Status != STATUS_RUNNING {
		done = true
		return
	}

	if rn.Generation >= rn.Run.Steps {
		rn.Status = STATUS_EXHAUSTED
		done = true
		if rn.Verbose {
			log.Printf("%v: generation %v\n", rn.Status, rn.Generation)
		}
		return
	}

	rn.Row.Step(rn.Run.Rule)
	rn.Generation += 1

	err = rn.frame()
	if err != nil {
		return
	}

	age, ok := rn.History.Find(rn.Row.Blocks)
	if ok {
		rn.Status = STATUS_CYCLING
		rn.Cycle = age
		done = true
		if rn.Verbose {
			log.Printf("%v: generation %v, period %v\n", rn.Status, rn.Generation, rn.Cycle)
		}
		return
	}
	rn.History.Push(rn.Row.Blocks)

	return
}

// Power returns the total cells flipped since the last Reset.
func (rn *Runner) Power() int {
	return rn.Row.BitsFlipped
}

// frame renders the current generation to the output, every cell
// first to last, space separated, one line per generation.
func (rn *Runner) frame() (err error) {
	if rn.Output == nil {
		return
	}

	glyphs := make([]byte, 0, rn.Run.Cells*2)
	for bit := range rn.Row.Bits() {
		if len(glyphs) != 0 {
			glyphs = append(glyphs, ' ')
		}
		if bit {
			glyphs = append(glyphs, rn.Run.Alive)
		} else {
			glyphs = append(glyphs, rn.Run.Dead)
		}
	}
	glyphs = append(glyphs, '\n')

	_, err = rn.Output.Write(glyphs)
	if err != nil {
		err = &ErrFrame{Generation: rn.Generation, Err: err}
	}

	return
}
