package automaton

import (
	"errors"

	"github.com/ezrec/ucell/translate"
)

var f = translate.From

var (
	// Row errors
	ErrBlockCount = errors.New(f("block count mismatch"))
)
