package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Push(t *testing.T) {
	assert := assert.New(t)

	hist := &History{Capacity: 3}
	hist.Reset()

	hist.Push([]uint8{1})
	hist.Push([]uint8{2})
	hist.Push([]uint8{3})

	age, ok := hist.Find([]uint8{3})
	assert.True(ok)
	assert.Equal(1, age)

	age, ok = hist.Find([]uint8{2})
	assert.True(ok)
	assert.Equal(2, age)

	age, ok = hist.Find([]uint8{1})
	assert.True(ok)
	assert.Equal(3, age)

	_, ok = hist.Find([]uint8{4})
	assert.False(ok)
}

func TestHistory_Evict(t *testing.T) {
	assert := assert.New(t)

	hist := &History{Capacity: 2}
	hist.Reset()

	hist.Push([]uint8{1})
	hist.Push([]uint8{2})
	hist.Push([]uint8{3})

	_, ok := hist.Find([]uint8{1})
	assert.False(ok)

	age, ok := hist.Find([]uint8{3})
	assert.True(ok)
	assert.Equal(1, age)

	age, ok = hist.Find([]uint8{2})
	assert.True(ok)
	assert.Equal(2, age)

	hist.Push([]uint8{4})
	_, ok = hist.Find([]uint8{2})
	assert.False(ok)
}

func TestHistory_Empty(t *testing.T) {
	assert := assert.New(t)

	hist := &History{}
	hist.Reset()

	hist.Push([]uint8{1})
	_, ok := hist.Find([]uint8{1})
	assert.False(ok)
}

func TestHistory_Reset(t *testing.T) {
	assert := assert.New(t)

	hist := &History{Capacity: 4}
	hist.Reset()
	hist.Push([]uint8{1})

	hist.Reset()
	_, ok := hist.Find([]uint8{1})
	assert.False(ok)
}

func TestHistory_Clones(t *testing.T) {
	assert := assert.New(t)

	hist := &History{Capacity: 2}
	hist.Reset()

	blocks := []uint8{1, 2}
	hist.Push(blocks)

	// Mutating the pushed slice must not disturb the memory.
	blocks[0] = 9

	age, ok := hist.Find([]uint8{1, 2})
	assert.True(ok)
	assert.Equal(1, age)

	_, ok = hist.Find([]uint8{9, 2})
	assert.False(ok)
}
