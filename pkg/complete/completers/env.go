package completers

import (
	"iter"
	"os"
	"strings"

	"github.com/tabwalk/tabwalk/pkg/complete"
)

// Env returns a completer offering environment variable names, for value
// slots that name a variable rather than hold its content.
func Env() complete.Completer {
	return func(_ []string, partial string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, kv := range os.Environ() {
				name, _, ok := strings.Cut(kv, "=")
				if !ok {
					continue
				}
				if strings.HasPrefix(name, partial) && !yield(name) {
					return
				}
			}
		}
	}
}
