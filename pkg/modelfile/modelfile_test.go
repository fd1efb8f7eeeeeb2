package modelfile

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gitLikeDefinition = `
program: git
help: true
options:
  - name: --verbose
    aliases: ["-v"]
    action: store_true
  - name: --work-tree
    nargs: "1"
commands:
  - name: remote
    options:
      - name: --cached
        action: store_true
    commands:
      - name: add
        positionals:
          - name: remote-name
          - name: url
  - name: checkout
    aliases: [co]
    positionals:
      - name: branch
        choices: [main, develop]
`

func TestParseBuildsWalkableModel(t *testing.T) {
	model, err := Parse([]byte(gitLikeDefinition))
	require.NoError(t, err)

	got := model.Complete(nil, "--v")
	assert.ElementsMatch(t, []string{"--verbose"}, got)

	// Nested subcommand levels each carry their own vocabulary.
	got = model.Complete([]string{"remote"}, "--c")
	assert.ElementsMatch(t, []string{"--cached"}, got)

	// remote add declares two positional slots; after both are filled
	// nothing else is legal.
	assert.Empty(t, model.Complete([]string{"remote", "add", "origin", "url", "extra"}, ""))

	// Aliases share the subcommand's model.
	assert.ElementsMatch(t,
		model.Complete([]string{"checkout"}, "ma"),
		model.Complete([]string{"co"}, "ma"))
	assert.ElementsMatch(t, []string{"main"}, model.Complete([]string{"co"}, "ma"))
}

func TestParseHelpTokens(t *testing.T) {
	model, err := Parse([]byte("help: true"))
	require.NoError(t, err)

	got := model.Complete(nil, "-")
	assert.ElementsMatch(t, []string{"-h", "--help"}, got)
}

func TestParseOptionChoices(t *testing.T) {
	def := `
options:
  - name: --level
    choices: [debug, info, warn]
`
	model, err := Parse([]byte(def))
	require.NoError(t, err)

	got := model.Complete([]string{"--level"}, "d")
	assert.ElementsMatch(t, []string{"debug"}, got)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("options:\n  - name: --x\n    action: explode"))
	assert.ErrorContains(t, err, `unknown action "explode"`)

	_, err = Parse([]byte("options:\n  - name: --x\n    complete: magic"))
	assert.ErrorContains(t, err, `unknown completer "magic"`)

	_, err = Parse([]byte("options:\n  - name: --x\n    nargs: bogus"))
	assert.ErrorContains(t, err, "repeat-specification")

	_, err = Parse([]byte("commands:\n  - options: []"))
	assert.ErrorContains(t, err, "subcommand without a name")

	_, err = Parse([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/tool.yaml": {Data: []byte(gitLikeDefinition)},
	}

	model, err := Load(fsys, "defs/tool.yaml")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"--verbose"}, model.Complete(nil, "--v"))

	_, err = Load(fsys, "defs/missing.yaml")
	assert.Error(t, err)
}
