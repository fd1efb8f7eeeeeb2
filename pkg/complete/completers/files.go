package completers

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/tabwalk/tabwalk/pkg/complete"
)

// Files returns a completer that lists filesystem entries whose name starts
// with the partial word. Directory candidates get a trailing separator so
// the shell can keep drilling down. Listing happens inside the sequence, so
// every traversal sees the directory as it is at that moment.
func Files() complete.Completer {
	return FilesIn("")
}

// FilesIn is Files anchored at root instead of the working directory.
// Relative partial words resolve against root; candidates keep the form the
// user typed.
func FilesIn(root string) complete.Completer {
	return func(_ []string, partial string) iter.Seq[string] {
		return func(yield func(string) bool) {
			dir, base := filepath.Split(partial)
			listDir := filepath.Join(root, dir)
			if listDir == "" {
				listDir = "."
			}
			entries, err := os.ReadDir(listDir)
			if err != nil {
				return
			}
			for _, e := range entries {
				name := e.Name()
				if !strings.HasPrefix(name, base) {
					continue
				}
				candidate := dir + name
				if e.IsDir() {
					candidate += string(os.PathSeparator)
				}
				if !yield(candidate) {
					return
				}
			}
		}
	}
}
