package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tabwalk/tabwalk/internal/core"
	"github.com/tabwalk/tabwalk/pkg/bind"
	"github.com/tabwalk/tabwalk/pkg/complete"
	"github.com/tabwalk/tabwalk/pkg/complete/completers"
	"github.com/tabwalk/tabwalk/pkg/modelfile"
	"github.com/tabwalk/tabwalk/pkg/shim"
)

var BUILD_VERSION = "dev"

var modelPath = pflag.StringP("model", "m", "", "path to a YAML model definition")
var line = pflag.String("line", "", "raw command line to complete, cursor on the last word")

var helpFlag = pflag.BoolP("help", "h", false, "display help information")
var versionFlag = pflag.Bool("ver", false, "display build version")

const helpText = `tabwalk - completion engine for structured command lines

USAGE:
  tabwalk query -m <model.yaml> --line "<command line>"
                          Print the completions of the line's last word
  tabwalk script bash <program>
  tabwalk script zsh <program>
                          Print a shell snippet wiring <program>'s
                          completion through the side channel

Model definitions describe a program's options, positionals and
subcommands in YAML; models named without a path are looked up under
~/.tabwalk/models. Exit status is 0 when completions exist, 1 otherwise.

OPTIONS:
`

func main() {
	// The side channel bypasses normal flag parsing entirely: everything
	// after the marker is the escaped completion payload.
	if len(os.Args) > 1 && os.Args[1] == shim.CompleteFlag {
		os.Exit(runSelfCompletion(os.Args[2:]))
	}

	pflag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag || pflag.NArg() == 0 {
		fmt.Print(helpText)
		pflag.PrintDefaults()
		return
	}

	logger := initializeLogger()
	defer logger.Sync()

	var err error
	switch cmd := pflag.Arg(0); cmd {
	case "query":
		err = runQuery(logger)
	case "script":
		err = runScript(pflag.Args()[1:])
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "tabwalk: "+err.Error())
		os.Exit(1)
	}
}

func runQuery(logger *zap.Logger) error {
	if *modelPath == "" || *line == "" {
		return fmt.Errorf("query requires --model and --line")
	}

	model, err := modelfile.LoadFile(resolveModelPath(*modelPath))
	if err != nil {
		return err
	}

	words, err := shim.SplitLine(*line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("--line is empty")
	}

	// The first word is the program name; the cursor sits on the last.
	payload := append([]string{strconv.Itoa(len(words) - 1)}, words...)
	runner := shim.NewRunner(model, shim.WithLogger(logger))
	found, err := runner.Run(payload)
	if err != nil {
		return err
	}
	if !found {
		os.Exit(1)
	}
	return nil
}

func runScript(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: tabwalk script <bash|zsh> <program>")
	}
	switch shell, prog := args[0], args[1]; shell {
	case "bash":
		fmt.Print(shim.BashScript(prog))
	case "zsh":
		fmt.Print(shim.ZshScript(prog))
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
	return nil
}

func runSelfCompletion(values []string) int {
	logger := initializeLogger()
	defer logger.Sync()

	runner := shim.NewRunner(selfModel(), shim.WithLogger(logger))
	found, err := runner.Run(values)
	if err != nil || !found {
		return 1
	}
	return 0
}

// selfModel describes tabwalk's own command line, so the tool completes
// itself through the same engine it offers to others.
func selfModel() *complete.Model {
	root := complete.New()
	_ = bind.FlagSet(root, pflag.CommandLine)
	_ = root.AddOption("--model", complete.Decl{Completer: completers.Files()})
	_ = root.AddOption("-m", complete.Decl{Completer: completers.Files()})

	query := root.AddSubcommand("query")
	_ = bind.FlagSet(query, pflag.CommandLine)
	_ = query.AddOption("--model", complete.Decl{Completer: completers.Files()})
	_ = query.AddOption("-m", complete.Decl{Completer: completers.Files()})

	script := root.AddSubcommand("script")
	_ = script.AddPositional(complete.Decl{Choices: []string{"bash", "zsh"}})
	_ = script.AddPositional(complete.Decl{})

	return root
}

func resolveModelPath(p string) string {
	if _, err := os.Stat(p); err == nil || strings.ContainsRune(p, os.PathSeparator) {
		return p
	}
	name := p
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}
	return filepath.Join(core.ModelsDir(), name)
}

func initializeLogger() *zap.Logger {
	logLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if lvl, err := zapcore.ParseLevel(os.Getenv("TABWALK_LOG_LEVEL")); err == nil {
		logLevel = zap.NewAtomicLevelAt(lvl)
	}

	// Candidates go to stdout; logs must stay out of the shell's way.
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
