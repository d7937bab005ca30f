// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package automaton

// Step advances the row one generation, in place.
//
// Three views slide along the row one cell per iteration. Each
// iteration evaluates the neighborhood under the views, and writes
// back the value recorded by the previous iteration to the cell the
// window has just moved past. The write back trails the window, so
// every evaluation reads only values from before the step.
//
// The first and last cells have no full neighborhood and hold their
// values. A row shorter than one neighborhood cannot step; asking is
// a contract violation.
func (row *Row[B]) Step(rule Rule) {
	if row.cells < 3 {
		panic("row too short to step")
	}

	left := row.view(0)
	center := row.view(1)
	right := row.view(2)

	// The first cell holds its value.
	prev := left.Get()

	for i := 3; i < row.cells+1; i++ {
		curr := rule.Evaluate(left.Get(), center.Get(), right.Get())

		// Write the cell the window has moved past.
		left.ConditionalFlip(prev != left.Get())
		prev = curr

		left = center
		center = right
		right = row.view(i)
	}

	// Write the next to last cell. The last cell holds its value.
	left.ConditionalFlip(prev != left.Get())
}
