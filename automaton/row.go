// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package automaton

import (
	"iter"
	"math/bits"
	"math/rand"
	"slices"
)

// Block is any unsigned word type that cells can be packed into. The
// bit width of the type sets the number of cells held per block.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BlockBits returns the number of cells held by one block of type B.
func BlockBits[B Block]() int {
	return bits.OnesCount64(uint64(^B(0)))
}

// Row is a fixed length row of cells, packed into blocks of type B.
//
// Cells pack MSB first: within a block of width W, bit W-1 holds the
// earliest cell and bit 0 the last. When the row length is not a
// multiple of W the final block has unused low bits; the engine never
// reads or writes them, and they may hold any value.
type Row[B Block] struct {
	Blocks []B // Packed cell storage, earliest cells first.

	// BitsFlipped counts writes that changed a cell. Callers may
	// zero it at any time to restart the count.
	BitsFlipped int

	cells int
}

// NewRow creates a zeroed row of the given cell count.
// A row needs at least one cell; asking for less is a contract
// violation.
func NewRow[B Block](cells int) (row *Row[B]) {
	if cells < 1 {
		panic("empty row")
	}

	width := BlockBits[B]()
	row = &Row[B]{
		Blocks: make([]B, (cells+width-1)/width),
		cells:  cells,
	}

	return
}

// Cells returns the row length in cells.
func (row *Row[B]) Cells() int {
	return row.cells
}

// View creates a cursor for the cell at pos.
// pos outside the row is a contract violation.
func (row *Row[B]) View(pos int) View[B] {
	if pos < 0 || pos >= row.cells {
		panic("view out of range")
	}

	return row.view(pos)
}

// view creates a cursor without the range check. The step loop parks
// its trailing cursor one cell past the row; that cursor is never
// dereferenced.
func (row *Row[B]) view(pos int) View[B] {
	width := BlockBits[B]()
	return View[B]{
		row:   row,
		block: pos / width,
		pos:   uint(width - 1 - pos%width),
	}
}

// Get returns the cell at pos.
func (row *Row[B]) Get(pos int) bool {
	return row.View(pos).Get()
}

// Set assigns the cell at pos, flipping only when the value changes.
func (row *Row[B]) Set(pos int, value bool) {
	view := row.View(pos)
	view.ConditionalFlip(value != view.Get())
}

// Load replaces the row storage with raw packed blocks. The slice
// must cover the row exactly, one block per storage block.
func (row *Row[B]) Load(blocks []B) (err error) {
	if len(blocks) != len(row.Blocks) {
		err = ErrBlockCount
		return
	}

	copy(row.Blocks, blocks)

	return
}

// Randomize fills the row with pseudo-random cells from seed.
func (row *Row[B]) Randomize(seed int) {
	rands := rand.New(rand.NewSource(int64(seed)))
	for n := range row.Blocks {
		row.Blocks[n] = B(rands.Uint64())
	}
}

// Bits returns a read only iterator over the cells, first to last.
// It yields exactly Cells() values even when the final block is only
// partly used.
func (row *Row[B]) Bits() iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		for pos := 0; pos < row.cells; pos++ {
			if !yield(row.view(pos).Get()) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the row.
func (row *Row[B]) Clone() (clone *Row[B]) {
	clone = &Row[B]{
		Blocks:      slices.Clone(row.Blocks),
		BitsFlipped: row.BitsFlipped,
		cells:       row.cells,
	}

	return
}

// String renders the cells as debug glyphs, '#' for a live cell and
// '.' for a dead one.
func (row *Row[B]) String() (text string) {
	for bit := range row.Bits() {
		if bit {
			text += "#"
		} else {
			text += "."
		}
	}

	return
}
