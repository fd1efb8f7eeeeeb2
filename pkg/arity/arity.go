// Package arity resolves declared repeat-specifications into token-count
// ranges. The completion engine only needs to know how many tokens an
// option or positional argument absorbs, not whether the values are
// well-typed, so a (min, max) range is the entire model of an argument's
// consumption.
package arity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Unbounded marks a range with no upper limit on consumed tokens.
const Unbounded = math.MaxInt

// ErrInvalidArity indicates a malformed or unrecognized
// repeat-specification. It is surfaced at registration time: a model built
// from a broken declaration cannot be safely walked later.
var ErrInvalidArity = errors.New("arity: invalid repeat-specification")

// Range is the number of tokens an argument consumes as its values: at
// least Min and at most Max. Max may be Unbounded.
type Range struct {
	Min int
	Max int
}

// Exactly returns the range consuming exactly n tokens.
func Exactly(n int) Range {
	return Range{Min: n, Max: n}
}

// Open reports whether the range can still absorb a token.
func (r Range) Open() bool {
	return r.Max > 0
}

// Consume removes one token from the range. Min floors at zero; an
// Unbounded Max never decreases, so unbounded ranges never exhaust.
func (r Range) Consume() Range {
	if r.Min > 0 {
		r.Min--
	}
	if r.Max > 0 && r.Max != Unbounded {
		r.Max--
	}
	return r
}

func (r Range) String() string {
	if r.Max == Unbounded {
		return fmt.Sprintf("(%d, unbounded)", r.Min)
	}
	return fmt.Sprintf("(%d, %d)", r.Min, r.Max)
}

// NArgs is a declared repeat-specification: one of the symbolic forms
// below, a non-negative decimal count, or Unspecified when the declaration
// leaves the count to its action.
type NArgs string

const (
	// Unspecified defers to the argument's action; with no action it
	// means the default store behavior of exactly one value.
	Unspecified NArgs = ""
	// ZeroOrOne consumes at most one token.
	ZeroOrOne NArgs = "?"
	// ZeroOrMore consumes any number of tokens.
	ZeroOrMore NArgs = "*"
	// OneOrMore consumes at least one token.
	OneOrMore NArgs = "+"
	// Remainder consumes the rest of the line.
	Remainder NArgs = "..."
)

// Exact returns the NArgs form for a fixed token count.
func Exact(n int) NArgs {
	return NArgs(strconv.Itoa(n))
}

// Range resolves the repeat-specification on its own, without an action.
func (n NArgs) Range() (Range, error) {
	switch n {
	case ZeroOrOne:
		return Range{Min: 0, Max: 1}, nil
	case ZeroOrMore, Remainder:
		return Range{Min: 0, Max: Unbounded}, nil
	case OneOrMore:
		return Range{Min: 1, Max: Unbounded}, nil
	case Unspecified:
		return Exactly(1), nil
	}
	count, err := strconv.Atoi(string(n))
	if err != nil || count < 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidArity, string(n))
	}
	return Exactly(count), nil
}

// Action describes what the host parser does with an argument. It decides
// the token count when the declaration itself leaves NArgs unspecified.
// Built-in actions are the Kind constants; externally supplied actions
// implement ValueNArgs with their own declared repeat-specification, which
// is resolved by the same rules.
type Action interface {
	ValueNArgs() NArgs
}

// Kind is a built-in parser action.
type Kind int

const (
	// Store keeps a single value, the default behavior.
	Store Kind = iota
	// StoreConst keeps a fixed value and consumes no token.
	StoreConst
	// StoreTrue sets a boolean flag.
	StoreTrue
	// StoreFalse clears a boolean flag.
	StoreFalse
	// Append collects one value per occurrence.
	Append
	// AppendConst collects a fixed value per occurrence.
	AppendConst
	// Count tallies occurrences.
	Count
	// Help prints usage.
	Help
	// Version prints the program version.
	Version
)

var kindNArgs = map[Kind]NArgs{
	Store:       Exact(1),
	StoreConst:  Exact(0),
	StoreTrue:   Exact(0),
	StoreFalse:  Exact(0),
	Append:      Exact(1),
	AppendConst: Exact(0),
	Count:       Exact(0),
	Help:        Exact(0),
	Version:     Exact(0),
}

// ValueNArgs reports the repeat-specification implied by the built-in
// action.
func (k Kind) ValueNArgs() NArgs {
	return kindNArgs[k]
}

// Resolve maps a declared repeat-specification to the token-count range it
// implies. An explicit NArgs always wins. When it is unspecified the action
// decides: built-in no-value actions consume nothing, store-like actions
// consume one token, and custom actions are resolved recursively from their
// own declared NArgs. With neither, the default store behavior of exactly
// one token applies.
func Resolve(n NArgs, action Action) (Range, error) {
	if n != Unspecified || action == nil {
		return n.Range()
	}
	if k, ok := action.(Kind); ok {
		na, known := kindNArgs[k]
		if !known {
			return Range{}, fmt.Errorf("%w: unknown action kind %d", ErrInvalidArity, int(k))
		}
		return na.Range()
	}
	return Resolve(action.ValueNArgs(), nil)
}
