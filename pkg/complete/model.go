// Package complete implements the completion engine behind shell tab
// completion for structured command lines. A Model describes one parser
// level: the accumulated arity of its positional arguments and a
// prefix-indexed vocabulary of its option flags, subcommand names and
// positional choices. Completing a partial command line replays the words
// typed so far against the model and enumerates the valid continuations of
// the word under the cursor.
package complete

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tabwalk/tabwalk/pkg/arity"
	"github.com/tabwalk/tabwalk/pkg/trie"
)

// Completer produces candidate continuations for the partial word under the
// cursor. prev holds every fully typed word preceding it, so candidates can
// be derived from values already on the line. The returned sequence must be
// finite and restartable; it is invoked synchronously and may block on I/O.
type Completer func(prev []string, partial string) iter.Seq[string]

type entryKind int

const (
	kindOption entryKind = iota
	kindSubcommand
	kindChoice
)

// entry is the tagged union stored both in a model's keyword map and as the
// value of the matching vocabulary node. The two structures share entry
// pointers so they cannot drift apart.
type entry struct {
	kind      entryKind
	values    arity.Range // kindOption: tokens absorbed as the option's values
	sub       *Model      // kindSubcommand
	completer Completer   // kindOption: optional value completer
}

// Decl describes a single argument declaration. The zero value declares the
// default store behavior: exactly one value token.
type Decl struct {
	// NArgs is the declared repeat-specification. When unspecified the
	// Action decides the token count.
	NArgs arity.NArgs
	// Action is what the host parser does with the argument.
	Action arity.Action
	// Completer supplies custom value candidates.
	Completer Completer
	// Choices constrains values to a fixed set. For an option this
	// doubles as a completer; for a positional the choices also join the
	// level's vocabulary so they surface alongside keyword completions.
	Choices []string
}

// Model describes one parser level: the root parser or one subcommand.
// A Model is mutable while arguments are registered (append-only) and
// treated as immutable once completion requests begin, so completion needs
// no synchronization.
type Model struct {
	positionals          *arity.Range
	keywords             map[string]*entry
	vocab                *trie.Tree[*entry]
	positionalCompleters []Completer
}

// New creates an empty argument model for one parser level.
func New() *Model {
	return &Model{
		keywords: make(map[string]*entry),
		vocab:    trie.New[*entry](),
	}
}

// AddOption declares a keyword argument. The option token itself is matched
// exactly during the walk; the resolved arity counts the tokens it absorbs
// as values afterwards. Re-declaring a name overwrites the previous entry.
func (m *Model) AddOption(name string, d Decl) error {
	if name == "" {
		return fmt.Errorf("declare option: empty name")
	}
	r, err := arity.Resolve(d.NArgs, d.Action)
	if err != nil {
		return fmt.Errorf("declare option %s: %w", name, err)
	}
	c := d.Completer
	if c == nil && len(d.Choices) > 0 {
		c = choiceSeq(d.Choices)
	}
	e := &entry{kind: kindOption, values: r, completer: c}
	m.keywords[name] = e
	m.vocab.Insert(name, e)
	return nil
}

// AddPositional declares a positional argument, extending the level's
// accumulated positional arity by the resolved range. Declared choices join
// the vocabulary; matching one during a walk consumes a positional slot.
func (m *Model) AddPositional(d Decl) error {
	r, err := arity.Resolve(d.NArgs, d.Action)
	if err != nil {
		return fmt.Errorf("declare positional: %w", err)
	}
	if m.positionals == nil {
		m.positionals = &r
	} else {
		m.positionals.Min = addSaturating(m.positionals.Min, r.Min)
		m.positionals.Max = addSaturating(m.positionals.Max, r.Max)
	}
	for _, choice := range d.Choices {
		e := &entry{kind: kindChoice}
		m.keywords[choice] = e
		m.vocab.Insert(choice, e)
	}
	if d.Completer != nil {
		m.positionalCompleters = append(m.positionalCompleters, d.Completer)
	}
	return nil
}

// AddSubcommand declares a nested parser level under name and returns its
// model. The sub-model is permanently linked into this level's vocabulary;
// matching name during a walk switches to it irreversibly.
func (m *Model) AddSubcommand(name string) *Model {
	sub := New()
	m.AddSubmodel(name, sub)
	return sub
}

// AddSubmodel links an existing model under name. This is how aliases share
// one subcommand's argument surface.
func (m *Model) AddSubmodel(name string, sub *Model) {
	e := &entry{kind: kindSubcommand, sub: sub}
	m.keywords[name] = e
	m.vocab.Insert(name, e)
}

// AddHelp registers the conventional -h/--help flags, which consume no
// value tokens.
func (m *Model) AddHelp() {
	_ = m.AddOption("-h", Decl{Action: arity.Help})
	_ = m.AddOption("--help", Decl{Action: arity.Help})
}

// Positionals returns the accumulated positional arity of this level, and
// whether any positional argument was declared.
func (m *Model) Positionals() (arity.Range, bool) {
	if m.positionals == nil {
		return arity.Range{}, false
	}
	return *m.positionals, true
}

func addSaturating(a, b int) int {
	if a == arity.Unbounded || b == arity.Unbounded {
		return arity.Unbounded
	}
	return a + b
}

func choiceSeq(choices []string) Completer {
	return func(_ []string, partial string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, c := range choices {
				if strings.HasPrefix(c, partial) && !yield(c) {
					return
				}
			}
		}
	}
}
