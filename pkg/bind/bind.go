// Package bind derives argument models from the host's standard
// argument-parsing structures, so existing CLIs gain completion without
// re-declaring their surface: pflag flag sets and cobra command trees map
// directly onto models.
package bind

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tabwalk/tabwalk/pkg/arity"
	"github.com/tabwalk/tabwalk/pkg/complete"
)

// FlagSet registers every flag of fs on model. Flags carrying a
// NoOptDefVal (bools, counts) consume no value token; everything else
// consumes exactly one. Shorthands register alongside the long form.
func FlagSet(model *complete.Model, fs *pflag.FlagSet) error {
	var failed error
	fs.VisitAll(func(f *pflag.Flag) {
		if failed != nil || f.Hidden {
			return
		}
		decl := complete.Decl{NArgs: arity.Exact(1)}
		if f.NoOptDefVal != "" {
			decl.NArgs = arity.Exact(0)
		}
		if err := model.AddOption("--"+f.Name, decl); err != nil {
			failed = fmt.Errorf("bind: flag %s: %w", f.Name, err)
			return
		}
		if f.Shorthand != "" {
			if err := model.AddOption("-"+f.Shorthand, decl); err != nil {
				failed = fmt.Errorf("bind: flag %s: %w", f.Shorthand, err)
			}
		}
	})
	return failed
}

// Command builds a model mirroring a cobra command tree: each level binds
// its flag set, ValidArgs become positional choices, and subcommands with
// their aliases nest recursively.
func Command(cmd *cobra.Command) (*complete.Model, error) {
	model := complete.New()
	if err := bindCommand(model, cmd); err != nil {
		return nil, err
	}
	return model, nil
}

func bindCommand(model *complete.Model, cmd *cobra.Command) error {
	if err := FlagSet(model, cmd.Flags()); err != nil {
		return err
	}
	if len(cmd.ValidArgs) > 0 {
		// ValidArgs entries may carry tab-separated descriptions.
		choices := lo.Map(cmd.ValidArgs, func(v string, _ int) string {
			name, _, _ := strings.Cut(v, "\t")
			return name
		})
		err := model.AddPositional(complete.Decl{
			NArgs:   arity.ZeroOrMore,
			Choices: choices,
		})
		if err != nil {
			return fmt.Errorf("bind: %s: %w", cmd.Name(), err)
		}
	}
	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		subModel := model.AddSubcommand(sub.Name())
		for _, alias := range sub.Aliases {
			model.AddSubmodel(alias, subModel)
		}
		if err := bindCommand(subModel, sub); err != nil {
			return err
		}
	}
	return nil
}
