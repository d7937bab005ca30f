// Package automaton implements a one dimensional binary cellular
// automaton over a bit packed row of cells.
//
// A Row packs its cells MSB first into fixed width unsigned blocks,
// so the earliest cell of a block sits in its highest bit. Transitions
// are driven by an eight entry Rule table indexed by the (left,
// center, right) neighborhood of a cell. Step applies the table across
// the row in place: three View cursors slide along the row and the new
// value of each cell is written back one iteration late, after the
// neighborhood window has moved past it, so every evaluation reads
// only pre step values and no scratch row is needed. The first and
// last cells have no full neighborhood and never change.
package automaton
