package script

import (
	"errors"

	"github.com/ezrec/ucell/translate"
)

var f = translate.From

var (
	// Equate errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Directive errors
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrDirectiveDuplicate = errors.New(f("directive duplicated"))
	ErrValueMissing       = errors.New(f("value missing"))
	ErrExtraArgs          = errors.New(f("excessive arguments"))
	ErrCellCount          = errors.New(f("cell count below a neighborhood"))
	ErrRuleRange          = errors.New(f("rule code not in 0..255"))
	ErrRuleConflict       = errors.New(f("rule and table both given"))
	ErrTableSyntax        = errors.New(f("table needs eight entries"))
	ErrTableEntry         = errors.New(f("table entry not 0 or 1"))
	ErrBlockRange         = errors.New(f("block not in 0..255"))
	ErrBlockCount         = errors.New(f("more blocks than the row holds"))
	ErrInitialConflict    = errors.New(f("blocks and random both given"))
	ErrStepCount          = errors.New(f("step count negative"))
	ErrHistoryDepth       = errors.New(f("history depth negative"))
	ErrGlyphSyntax        = errors.New(f("glyphs needs two values"))
	ErrGlyphRange         = errors.New(f("glyph not in 0..255"))
)

type ErrSeedRange int

func (err ErrSeedRange) Error() string {
	return f("seed %v outside the row", int(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
