// Package modelfile loads argument models from YAML definitions, so a
// program's options, positionals and subcommands can be described
// declaratively instead of registered in code. Definitions can come from
// disk or from an embedded filesystem.
package modelfile

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabwalk/tabwalk/pkg/arity"
	"github.com/tabwalk/tabwalk/pkg/complete"
	"github.com/tabwalk/tabwalk/pkg/complete/completers"
)

// Definition is the YAML form of one parser level. Subcommands nest the
// same shape recursively.
type Definition struct {
	// Program names the executable; only the top level sets it.
	Program     string          `yaml:"program,omitempty"`
	Help        bool            `yaml:"help,omitempty"`
	Options     []OptionDef     `yaml:"options,omitempty"`
	Positionals []PositionalDef `yaml:"positionals,omitempty"`
	Commands    []CommandDef    `yaml:"commands,omitempty"`
}

// OptionDef declares one keyword argument.
type OptionDef struct {
	Name string `yaml:"name"`
	// Aliases register additional tokens (short forms) with the same
	// declaration.
	Aliases []string `yaml:"aliases,omitempty"`
	// NArgs is the repeat-specification: "?", "*", "+", "..." or a
	// count. Empty defers to Action.
	NArgs string `yaml:"nargs,omitempty"`
	// Action is one of the built-in action names (store, store_true,
	// append, count, help, version, ...). Empty means store.
	Action  string   `yaml:"action,omitempty"`
	Choices []string `yaml:"choices,omitempty"`
	// Complete names a built-in completer: "files" or "env".
	Complete string `yaml:"complete,omitempty"`
}

// PositionalDef declares one positional argument.
type PositionalDef struct {
	Name     string   `yaml:"name,omitempty"`
	NArgs    string   `yaml:"nargs,omitempty"`
	Choices  []string `yaml:"choices,omitempty"`
	Complete string   `yaml:"complete,omitempty"`
}

// CommandDef declares one subcommand level.
type CommandDef struct {
	Name       string   `yaml:"name"`
	Aliases    []string `yaml:"aliases,omitempty"`
	Definition `yaml:",inline"`
}

var actionKinds = map[string]arity.Kind{
	"store":        arity.Store,
	"store_const":  arity.StoreConst,
	"store_true":   arity.StoreTrue,
	"store_false":  arity.StoreFalse,
	"append":       arity.Append,
	"append_const": arity.AppendConst,
	"count":        arity.Count,
	"help":         arity.Help,
	"version":      arity.Version,
}

var builtinCompleters = map[string]complete.Completer{
	"files": completers.Files(),
	"env":   completers.Env(),
}

// Parse unmarshals a YAML definition and builds its argument model.
func Parse(data []byte) (*complete.Model, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("modelfile: parse: %w", err)
	}
	return Build(def)
}

// Load reads a definition file from fsys and builds its model.
func Load(fsys fs.FS, path string) (*complete.Model, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("modelfile: read %s: %w", path, err)
	}
	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("modelfile: %s: %w", path, err)
	}
	return model, nil
}

// LoadFile is Load against the host filesystem.
func LoadFile(path string) (*complete.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelfile: read %s: %w", path, err)
	}
	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("modelfile: %s: %w", path, err)
	}
	return model, nil
}

// Build constructs the argument model a definition describes.
func Build(def Definition) (*complete.Model, error) {
	model := complete.New()
	if err := apply(model, def); err != nil {
		return nil, err
	}
	return model, nil
}

func apply(model *complete.Model, def Definition) error {
	if def.Help {
		model.AddHelp()
	}
	for _, opt := range def.Options {
		decl, err := declOf(opt.NArgs, opt.Action, opt.Choices, opt.Complete)
		if err != nil {
			return fmt.Errorf("modelfile: option %s: %w", opt.Name, err)
		}
		for _, name := range append([]string{opt.Name}, opt.Aliases...) {
			if err := model.AddOption(name, decl); err != nil {
				return fmt.Errorf("modelfile: %w", err)
			}
		}
	}
	for _, pos := range def.Positionals {
		decl, err := declOf(pos.NArgs, "", pos.Choices, pos.Complete)
		if err != nil {
			return fmt.Errorf("modelfile: positional %s: %w", pos.Name, err)
		}
		if err := model.AddPositional(decl); err != nil {
			return fmt.Errorf("modelfile: positional %s: %w", pos.Name, err)
		}
	}
	for _, cmd := range def.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("modelfile: subcommand without a name")
		}
		sub := model.AddSubcommand(cmd.Name)
		for _, alias := range cmd.Aliases {
			model.AddSubmodel(alias, sub)
		}
		if err := apply(sub, cmd.Definition); err != nil {
			return err
		}
	}
	return nil
}

func declOf(nargs, action string, choices []string, completerName string) (complete.Decl, error) {
	decl := complete.Decl{
		NArgs:   arity.NArgs(nargs),
		Choices: choices,
	}
	if action != "" {
		kind, ok := actionKinds[action]
		if !ok {
			return complete.Decl{}, fmt.Errorf("unknown action %q", action)
		}
		decl.Action = kind
	}
	if completerName != "" {
		c, ok := builtinCompleters[completerName]
		if !ok {
			return complete.Decl{}, fmt.Errorf("unknown completer %q", completerName)
		}
		decl.Completer = c
	}
	return decl, nil
}
