// Package script parses and runs line-oriented operation scripts against an
// [interval.Sequence].
//
// Each non-blank line holds one operation:
//
//	push VALUE
//	insert INDEX VALUE
//	set INDEX VALUE
//	get INDEX
//
// Lines starting with '#' are comments. A value is the remainder of the line
// after the preceding fields, with runs of whitespace collapsed.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crystalix007/interval-vec/interval"
)

// Parse errors.
var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrMalformed = errors.New("malformed operation")
)

// Kind identifies an operation.
type Kind int

// Supported operations.
const (
	Push Kind = iota
	Insert
	Set
	Get
)

// String returns the script keyword for the kind.
func (k Kind) String() string {
	switch k {
	case Push:
		return "push"
	case Insert:
		return "insert"
	case Set:
		return "set"
	case Get:
		return "get"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// keywords maps script keywords onto kinds.
var keywords = map[string]Kind{
	"push":   Push,
	"insert": Insert,
	"set":    Set,
	"get":    Get,
}

// Op is a single parsed operation.
type Op struct {
	Kind  Kind
	Index int
	Value string

	// Line is the 1-based line the operation was read from.
	Line int
}

// Result is the outcome of running one operation.
type Result struct {
	Op Op

	// Value is the value read by a get.
	Value string

	Err error
}

// Parse reads every operation from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		op, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		op.Line = line
		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return ops, nil
}

// parseLine parses one non-empty, non-comment line.
func parseLine(text string) (Op, error) {
	fields := strings.Fields(text)

	kind, ok := keywords[strings.ToLower(fields[0])]
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, fields[0])
	}

	op := Op{Kind: kind}
	args := fields[1:]

	if kind != Push {
		if len(args) == 0 {
			return Op{}, fmt.Errorf("%w: %s needs an index", ErrMalformed, kind)
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, fmt.Errorf("%w: bad index %q", ErrMalformed, args[0])
		}

		op.Index = index
		args = args[1:]
	}

	switch {
	case kind == Get && len(args) > 0:
		return Op{}, fmt.Errorf("%w: get takes no value", ErrMalformed)
	case kind != Get && len(args) == 0:
		return Op{}, fmt.Errorf("%w: %s needs a value", ErrMalformed, kind)
	}

	op.Value = strings.Join(args, " ")

	return op, nil
}

// Run applies ops to seq in order and reports each outcome to fn, which may
// be nil. A failed operation does not stop the run. It returns the number of
// failed operations.
func Run(seq interval.Sequence[string], ops []Op, fn func(Result)) int {
	failed := 0

	for _, op := range ops {
		result := Result{Op: op}

		switch op.Kind {
		case Push:
			seq.Push(op.Value)
		case Insert:
			result.Err = seq.Insert(op.Index, op.Value)
		case Set:
			result.Err = seq.Set(op.Index, op.Value)
		case Get:
			result.Value, result.Err = seq.Get(op.Index)
		}

		if result.Err != nil {
			failed++
		}

		if fn != nil {
			fn(result)
		}
	}

	return failed
}
