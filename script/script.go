// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script parses run scripts for the μCell automaton.
//
// A script is a line oriented list of directives (cells, rule, table,
// blocks, seed, random, steps, history, glyphs) with ';' comments,
// .equ equates, 'x' character quotes, and parse-time $(...) Starlark
// expression evaluation.
package script

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ucell/automaton"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":        "0",
	"BLOCK_SIZE":    fmt.Sprintf("%v", automaton.BlockBits[uint8]()),
	"DEFAULT_CELLS": fmt.Sprintf("%v", DEFAULT_CELLS),
	"DEFAULT_STEPS": fmt.Sprintf("%v", DEFAULT_STEPS),
	"RULE30":        "30",
	"RULE90":        "90",
	"RULE110":       "110",
	"RULE184":       "184",
}

// Parser is a single pass parser for μCell run scripts.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.

	seen map[string]bool // One shot directives already parsed.
}

// Predefine defines a new equate or redefines an existing equate.
func (par *Parser) Predefine(equ string, value string) {
	if par.predefine == nil {
		par.predefine = map[string]string{equ: value}
	} else {
		par.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (par *Parser) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)

	return
}

// intArgs returns the values of a list of words.
func (par *Parser) intArgs(words []string) (values []int, err error) {
	for _, word := range words {
		var value int
		value, err = par.valueOf(word)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}

// scalar returns the single integer argument of a one shot directive.
func (par *Parser) scalar(directive string, args []string) (value int, err error) {
	if len(args) < 1 {
		err = ErrValueMissing
		return
	}
	if len(args) > 1 {
		err = ErrExtraArgs
		return
	}
	if par.seen[directive] {
		err = ErrDirectiveDuplicate
		return
	}
	par.seen[directive] = true

	value, err = par.valueOf(args[0])

	return
}

// parenEval does parse-time $(...) evaluations
func (par *Parser) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range par.Equate {
		var equ int
		equ, err = par.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands quotes, expressions and equates in a single line.
func (par *Parser) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	par.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := par.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := par.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		par.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := par.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords evaluates the words of a single directive.
func (par *Parser) parseWords(run *Run, words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	run.Directives = append(run.Directives, Directive{LineNo: lineno, Words: words})

	switch words[0] {
	case "cells":
		var cells int
		cells, err = par.scalar("cells", words[1:])
		if err != nil {
			return
		}
		if cells < CELLS_MIN {
			err = ErrCellCount
			return
		}
		run.Cells = cells
	case "rule":
		if par.seen["table"] {
			err = ErrRuleConflict
			return
		}
		var code int
		code, err = par.scalar("rule", words[1:])
		if err != nil {
			return
		}
		if code < 0 || code > 255 {
			err = ErrRuleRange
			return
		}
		run.Rule = automaton.Wolfram(uint8(code))
	case "table":
		if par.seen["rule"] {
			err = ErrRuleConflict
			return
		}
		if par.seen["table"] {
			err = ErrDirectiveDuplicate
			return
		}
		par.seen["table"] = true
		if len(words) != 9 {
			err = ErrTableSyntax
			return
		}
		var entries []int
		entries, err = par.intArgs(words[1:])
		if err != nil {
			return
		}
		for n, entry := range entries {
			switch entry {
			case 0:
				run.Rule[n] = false
			case 1:
				run.Rule[n] = true
			default:
				err = ErrTableEntry
				return
			}
		}
	case "blocks":
		if len(words) < 2 {
			err = ErrValueMissing
			return
		}
		var values []int
		values, err = par.intArgs(words[1:])
		if err != nil {
			return
		}
		for _, value := range values {
			if value < 0 || value > 255 {
				err = ErrBlockRange
				return
			}
			run.Blocks = append(run.Blocks, uint8(value))
		}
	case "seed":
		if len(words) < 2 {
			err = ErrValueMissing
			return
		}
		var values []int
		values, err = par.intArgs(words[1:])
		if err != nil {
			return
		}
		run.Seeds = append(run.Seeds, values...)
	case "random":
		var seed int
		seed, err = par.scalar("random", words[1:])
		if err != nil {
			return
		}
		run.Random = true
		run.RandomSeed = seed
	case "steps":
		var steps int
		steps, err = par.scalar("steps", words[1:])
		if err != nil {
			return
		}
		if steps < 0 {
			err = ErrStepCount
			return
		}
		run.Steps = steps
	case "history":
		var depth int
		depth, err = par.scalar("history", words[1:])
		if err != nil {
			return
		}
		if depth < 0 {
			err = ErrHistoryDepth
			return
		}
		run.History = depth
	case "glyphs":
		if par.seen["glyphs"] {
			err = ErrDirectiveDuplicate
			return
		}
		par.seen["glyphs"] = true
		if len(words) != 3 {
			err = ErrGlyphSyntax
			return
		}
		var values []int
		values, err = par.intArgs(words[1:])
		if err != nil {
			return
		}
		for _, value := range values {
			if value < 0 || value > 255 {
				err = ErrGlyphRange
				return
			}
		}
		run.Alive = byte(values[0])
		run.Dead = byte(values[1])
	default:
		err = ErrDirectiveInvalid
		return
	}

	return
}

// Parse parses an input stream into a Run configuration.
func (par *Parser) Parse(input io.Reader) (run *Run, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	par.Equate = maps.Clone(sysEquate)
	for attr, val := range par.predefine {
		par.Equate[attr] = val
	}
	par.seen = map[string]bool{}

	parsed := &Run{
		Cells: DEFAULT_CELLS,
		Rule:  automaton.Wolfram(DEFAULT_RULE),
		Steps: DEFAULT_STEPS,
		Alive: DEFAULT_ALIVE,
		Dead:  DEFAULT_DEAD,
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if par.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = par.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = par.parseWords(parsed, words, lineno)
		if err != nil {
			return
		}
	}

	err = parsed.Validate()
	if err != nil {
		return
	}

	run = parsed

	return
}
