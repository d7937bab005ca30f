package script

import (
	"github.com/ezrec/ucell/automaton"
)

// Run defaults, matching the classic demo automaton.
const (
	DEFAULT_CELLS = 24
	DEFAULT_STEPS = 100
	DEFAULT_RULE  = 110
	DEFAULT_ALIVE = '#'
	DEFAULT_DEAD  = ' '

	// CELLS_MIN is the shortest row with a full neighborhood.
	CELLS_MIN = 3
)

// Directive is one parsed script line, after equate and expression
// expansion.
type Directive struct {
	LineNo int      // Line number of the directive.
	Words  []string // Expanded directive words.
}

// Run is a fully parsed run configuration.
type Run struct {
	Cells      int            // Row length in cells.
	Rule       automaton.Rule // Transition table.
	Steps      int            // Generations to run.
	Blocks     []uint8        // Initial packed blocks, earliest cells first.
	Seeds      []int          // Cells set live after the blocks are loaded.
	Random     bool           // If set, the row starts randomized.
	RandomSeed int            // Randomizer seed.
	History    int            // Generations remembered for cycle detection.
	Alive      byte           // Live cell glyph.
	Dead       byte           // Dead cell glyph.

	Directives []Directive // Parsed source, for tracing.
}

// Validate checks the cross field constraints of the configuration.
func (run *Run) Validate() (err error) {
	if run.Cells < CELLS_MIN {
		err = ErrCellCount
		return
	}

	width := automaton.BlockBits[uint8]()
	if len(run.Blocks) > (run.Cells+width-1)/width {
		err = ErrBlockCount
		return
	}

	if run.Random && len(run.Blocks) != 0 {
		err = ErrInitialConflict
		return
	}

	for _, seed := range run.Seeds {
		if seed < 0 || seed >= run.Cells {
			err = ErrSeedRange(seed)
			return
		}
	}

	if run.Steps < 0 {
		err = ErrStepCount
		return
	}

	if run.History < 0 {
		err = ErrHistoryDepth
		return
	}

	return
}

// NewRow builds the initial row for the run. Blocks shorter than the
// row are padded with dead cells, and seeds apply on top.
func (run *Run) NewRow() (row *automaton.Row[uint8], err error) {
	err = run.Validate()
	if err != nil {
		return
	}

	row = automaton.NewRow[uint8](run.Cells)

	if run.Random {
		row.Randomize(run.RandomSeed)
	}

	if len(run.Blocks) != 0 {
		blocks := make([]uint8, len(row.Blocks))
		copy(blocks, run.Blocks)
		err = row.Load(blocks)
		if err != nil {
			row = nil
			return
		}
	}

	for _, pos := range run.Seeds {
		row.Set(pos, true)
	}

	// The starting generation costs no flips.
	row.BitsFlipped = 0

	return
}
