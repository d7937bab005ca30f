package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucell/automaton"
)

func TestRun_NewRow(t *testing.T) {
	assert := assert.New(t)

	run := &Run{
		Cells:  24,
		Rule:   automaton.RULE110,
		Blocks: []uint8{0x80},
		Seeds:  []int{1, 23},
	}

	row, err := run.NewRow()
	assert.NoError(err)

	// Short blocks pad with dead cells, seeds apply on top.
	assert.Equal([]uint8{0xc0, 0x00, 0x01}, row.Blocks)
	assert.Equal(24, row.Cells())
	assert.Equal(0, row.BitsFlipped)
}

func TestRun_NewRow_Random(t *testing.T) {
	assert := assert.New(t)

	run := &Run{
		Cells:      24,
		Random:     true,
		RandomSeed: 9,
	}

	row, err := run.NewRow()
	assert.NoError(err)

	want := automaton.NewRow[uint8](24)
	want.Randomize(9)
	assert.Equal(want.Blocks, row.Blocks)
	assert.Equal(0, row.BitsFlipped)
}

func TestRun_NewRow_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		run Run
		err error
	}){
		{run: Run{Cells: 0}, err: ErrCellCount},
		{run: Run{Cells: 2}, err: ErrCellCount},
		{run: Run{Cells: 8, Blocks: []uint8{1, 2}}, err: ErrBlockCount},
		{run: Run{Cells: 8, Blocks: []uint8{1}, Random: true}, err: ErrInitialConflict},
		{run: Run{Cells: 8, Seeds: []int{8}}, err: ErrSeedRange(8)},
		{run: Run{Cells: 8, Seeds: []int{-1}}, err: ErrSeedRange(-1)},
		{run: Run{Cells: 8, Steps: -1}, err: ErrStepCount},
		{run: Run{Cells: 8, History: -1}, err: ErrHistoryDepth},
	}

	for _, testcase := range table {
		row, err := testcase.run.NewRow()
		assert.ErrorIs(err, testcase.err)
		assert.Nil(row)
	}
}

func TestRun_Validate(t *testing.T) {
	assert := assert.New(t)

	run := &Run{
		Cells: 8,
		Seeds: []int{0, 7},
	}
	assert.NoError(run.Validate())
}
