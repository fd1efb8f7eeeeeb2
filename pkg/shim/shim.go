// Package shim bridges a shell's programmable completion to the engine.
// The shell integration script forwards the cursor index and word array
// (COMP_CWORD and COMP_WORDS) through a hidden remainder option on the host
// program; this package decodes that payload, shields literal "--" tokens
// from the host's argument parser, and prints candidates one per line for
// the shell to read back.
package shim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// CompleteFlag is the hidden remainder option hosts register with their
// argument parser to receive completion requests.
const CompleteFlag = "--_complete"

// EscapeDoubleDash shields literal "--" tokens from the host parser, which
// would otherwise treat the first one as the option/positional delimiter
// and stop feeding words to the side channel. Tokens before index are left
// alone. The escaping is transparent to the engine: UnescapeDoubleDash runs
// before any walk begins.
func EscapeDoubleDash(args []string, index int) []string {
	return lo.Map(args, func(a string, i int) string {
		if i < index {
			return a
		}
		return strings.ReplaceAll(a, "--", `\--`)
	})
}

// UnescapeDoubleDash reverses EscapeDoubleDash.
func UnescapeDoubleDash(args []string) []string {
	return lo.Map(args, func(a string, _ int) string {
		return strings.ReplaceAll(a, `\--`, "--")
	})
}

// Request is one completion query as delivered by the shell: the cursor's
// word index and the words on the line after the program name.
type Request struct {
	CWord int
	Words []string
}

// ParseRequest decodes the side-channel payload, which carries
// [COMP_CWORD, program, COMP_WORDS[1:]...] with every token escaped. The
// program name is dropped; COMP_CWORD keeps indexing correctly because
// slicing below the cursor is end-exclusive.
func ParseRequest(values []string) (Request, error) {
	if len(values) < 2 {
		return Request{}, fmt.Errorf("shim: malformed payload: need cursor index and program name, got %d values", len(values))
	}
	values = UnescapeDoubleDash(values)
	cword, err := strconv.Atoi(values[0])
	if err != nil {
		return Request{}, fmt.Errorf("shim: malformed cursor index %q: %w", values[0], err)
	}
	if cword < 0 {
		return Request{}, fmt.Errorf("shim: cursor index %d out of range", cword)
	}
	return Request{CWord: cword, Words: values[2:]}, nil
}

// Split returns the fully typed words preceding the cursor and the partial
// word under it. Words after the cursor are irrelevant: only context before
// the word being completed matters.
func (r Request) Split() (words []string, partial string) {
	upto := min(r.CWord, len(r.Words))
	scope := r.Words[:upto]
	if len(scope) == 0 {
		return nil, ""
	}
	return scope[:len(scope)-1], scope[len(scope)-1]
}
