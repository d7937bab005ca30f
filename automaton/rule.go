package automaton

import (
	"fmt"
)

// Rule is a transition table for a three cell neighborhood. The next
// value of a cell is Rule[index], where index packs the neighborhood
// as (left<<2 | center<<1 | right).
type Rule [8]bool

// RULE110 is the transition table for Wolfram rule 110.
var RULE110 = Wolfram(110)

// Wolfram builds the transition table for a Wolfram rule code: bit n
// of the code is the next value for neighborhood index n.
func Wolfram(code uint8) (rule Rule) {
	for n := range rule {
		rule[n] = (code>>n)&1 != 0
	}

	return
}

// Code returns the Wolfram rule code of the table.
func (rule Rule) Code() (code uint8) {
	for n := range rule {
		if rule[n] {
			code |= 1 << n
		}
	}

	return
}

func (rule Rule) String() string {
	return fmt.Sprintf("rule %v", rule.Code())
}

// Evaluate returns the next value of the center cell for the given
// neighborhood.
func (rule Rule) Evaluate(left bool, center bool, right bool) bool {
	index := 0
	if left {
		index |= 4
	}
	if center {
		index |= 2
	}
	if right {
		index |= 1
	}

	return rule[index]
}
