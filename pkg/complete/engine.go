package complete

import (
	"slices"

	"github.com/tabwalk/tabwalk/pkg/arity"
)

// Complete replays the fully typed words against the model and returns
// every valid continuation of partial. An empty result is the designed
// failure outcome: either a word could not be consumed by any open slot, or
// nothing in the active vocabulary continues the partial word. Order is
// unspecified; callers wanting determinism sort before display.
func (m *Model) Complete(words []string, partial string) []string {
	st := walkState{active: m}
	if m.positionals != nil {
		st.positional = *m.positionals
	}
	for _, word := range words {
		if !st.consume(word) {
			return nil
		}
	}
	return st.candidates(words, partial)
}

// walkState is the running state of one token-consumption walk.
type walkState struct {
	active *Model
	// keyword counts the open value slots of the pending option. It
	// takes precedence over positional slots until exhausted.
	keyword    arity.Range
	positional arity.Range
	// pending is the option whose value slots are open, kept so its
	// completer can take over when values are still required.
	pending *entry
}

// consume absorbs one fully typed word. An exact keyword match always wins
// over treating the word as filling an open slot: declared options are
// rejected as values. It reports false when nothing can absorb the word,
// which aborts the walk.
func (st *walkState) consume(word string) bool {
	if e, ok := st.active.keywords[word]; ok {
		switch e.kind {
		case kindSubcommand:
			// Irreversible switch: the parent's remaining keywords
			// and positionals go permanently out of scope, and the
			// positional budget restarts as the sub-level's own.
			st.active = e.sub
			st.keyword = arity.Range{}
			st.pending = nil
			st.positional = arity.Range{}
			if e.sub.positionals != nil {
				st.positional = *e.sub.positionals
			}
		case kindOption:
			st.keyword = e.values
			st.pending = e
		case kindChoice:
			// A positional's declared choice consumes a slot like
			// any other positional token.
			if st.keyword.Open() {
				st.keyword = st.keyword.Consume()
			} else if st.positional.Open() {
				st.positional = st.positional.Consume()
			} else {
				return false
			}
		}
		return true
	}
	if st.keyword.Open() {
		st.keyword = st.keyword.Consume()
		return true
	}
	if st.positional.Open() {
		st.positional = st.positional.Consume()
		return true
	}
	return false
}

// candidates enumerates the completions of partial against the active
// model once every fully typed word has been consumed.
func (st *walkState) candidates(words []string, partial string) []string {
	// An option still demanding values owns the completion target: only
	// its own completer may speak, and without one there is no generic
	// value completion.
	if st.keyword.Min > 0 {
		if st.pending != nil && st.pending.completer != nil {
			return slices.Collect(st.pending.completer(words, partial))
		}
		return nil
	}

	var out []string
	if node, err := st.active.vocab.Find(partial); err == nil {
		for word := range node.Words() {
			out = append(out, word)
		}
	}
	// Positional value completers surface alongside the vocabulary while
	// positional slots remain open.
	if st.positional.Open() {
		for _, c := range st.active.positionalCompleters {
			out = append(out, slices.Collect(c(words, partial))...)
		}
	}
	return out
}
