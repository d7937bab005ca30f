package automaton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWolfram(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Rule{false, true, true, true, false, true, true, false}, Wolfram(110))
	assert.Equal(Wolfram(110), RULE110)
	assert.Equal(Rule{}, Wolfram(0))
	assert.Equal(Rule{true, true, true, true, true, true, true, true}, Wolfram(255))
}

func TestRule_Code(t *testing.T) {
	assert := assert.New(t)

	for code := 0; code < 256; code++ {
		assert.Equal(uint8(code), Wolfram(uint8(code)).Code())
	}
}

func TestRule_Evaluate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Left   bool
		Center bool
		Right  bool
		Index  int
	}){
		{Left: false, Center: false, Right: false, Index: 0},
		{Left: false, Center: false, Right: true, Index: 1},
		{Left: false, Center: true, Right: false, Index: 2},
		{Left: false, Center: true, Right: true, Index: 3},
		{Left: true, Center: false, Right: false, Index: 4},
		{Left: true, Center: false, Right: true, Index: 5},
		{Left: true, Center: true, Right: false, Index: 6},
		{Left: true, Center: true, Right: true, Index: 7},
	}

	for _, code := range []uint8{0, 30, 110, 204, 255} {
		rule := Wolfram(code)
		for _, testcase := range table {
			assert.Equal(rule[testcase.Index],
				rule.Evaluate(testcase.Left, testcase.Center, testcase.Right),
				fmt.Sprintf("rule %v %+v", code, testcase))
		}
	}
}

func TestRule_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("rule 110", RULE110.String())
	assert.Equal("rule 0", Rule{}.String())
	assert.Equal("rule 255", Wolfram(255).String())
}
