// Package completers provides ready-made completer implementations for the
// completion engine: fixed choice sets, filesystem paths, environment
// variable names, and helpers for composing them.
package completers

import (
	"iter"
	"strings"

	"github.com/tabwalk/tabwalk/pkg/complete"
)

// Choices returns a completer offering the given words, filtered by the
// partial word's prefix.
func Choices(words ...string) complete.Completer {
	return func(_ []string, partial string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, w := range words {
				if strings.HasPrefix(w, partial) && !yield(w) {
					return
				}
			}
		}
	}
}

// Merge combines completers into one that yields each source's candidates
// in turn. Duplicates are the caller's concern.
func Merge(completers ...complete.Completer) complete.Completer {
	return func(prev []string, partial string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, c := range completers {
				for candidate := range c(prev, partial) {
					if !yield(candidate) {
						return
					}
				}
			}
		}
	}
}

// Seen returns a completer offering values that already appeared on the
// line, useful for arguments that reference earlier ones.
func Seen() complete.Completer {
	return func(prev []string, partial string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, w := range prev {
				if w != "" && !strings.HasPrefix(w, "-") &&
					strings.HasPrefix(w, partial) && !yield(w) {
					return
				}
			}
		}
	}
}
