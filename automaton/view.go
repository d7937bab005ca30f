package automaton

// View is a cursor to a single cell: the index of the containing
// block, plus the bit position inside that block. Views are transient;
// they slide across a row during a step and are not kept between
// steps.
type View[B Block] struct {
	row   *Row[B]
	block int
	pos   uint
}

// Get returns the cell under the view.
func (view View[B]) Get() bool {
	return (view.row.Blocks[view.block]>>view.pos)&1 != 0
}

// Flip inverts the cell under the view and counts the flip on the
// row.
func (view View[B]) Flip() {
	view.row.Blocks[view.block] ^= 1 << view.pos
	view.row.BitsFlipped += 1
}

// ConditionalFlip inverts the cell under the view when flip is set.
func (view View[B]) ConditionalFlip(flip bool) {
	if flip {
		view.Flip()
	}
}
