package runner

import (
	"github.com/ezrec/ucell/translate"
)

var f = translate.From

// ErrFrame indicates the generation whose frame failed to render.
type ErrFrame struct {
	Generation int
	Err        error
}

func (err *ErrFrame) Error() string {
	return f("generation %d %v", err.Generation, err.Err)
}

func (err *ErrFrame) Unwrap() error {
	return err.Err
}
