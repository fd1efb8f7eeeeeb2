package shim

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// SplitLine splits a raw completion line (COMP_LINE) into shell words, for
// shells that hand over the whole line instead of a word array. Quoting and
// escapes follow shell syntax; parameter expansion reads the current
// environment. A line ending in unquoted whitespace yields a trailing empty
// word, since the cursor sits on a fresh word there.
func SplitLine(line string) ([]string, error) {
	parser := syntax.NewParser()
	cfg := &expand.Config{Env: expand.FuncEnviron(os.Getenv)}

	var words []string
	var expandErr error
	err := parser.Words(strings.NewReader(line), func(w *syntax.Word) bool {
		s, err := expand.Literal(cfg, w)
		if err != nil {
			expandErr = err
			return false
		}
		words = append(words, s)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("shim: split line: %w", err)
	}
	if expandErr != nil {
		return nil, fmt.Errorf("shim: split line: %w", expandErr)
	}

	if endsInWhitespace(line) {
		words = append(words, "")
	}
	return words, nil
}

func endsInWhitespace(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == line || line == "" {
		return false
	}
	// A trailing backslash-escaped space belongs to the last word.
	return !strings.HasSuffix(trimmed, `\`)
}
