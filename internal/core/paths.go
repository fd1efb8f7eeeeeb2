package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	HomeDir   string
	DataDir   string
	LogFile   string
	ModelsDir string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		defaultPaths = &Paths{
			HomeDir:   homeDir,
			DataDir:   filepath.Join(homeDir, ".tabwalk"),
			LogFile:   filepath.Join(homeDir, ".tabwalk", "tabwalk.log"),
			ModelsDir: filepath.Join(homeDir, ".tabwalk", "models"),
		}

		err = os.MkdirAll(defaultPaths.DataDir, 0755)
		if err != nil {
			panic(err)
		}
	}
}

func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

// ModelsDir is where model definition files live when a query names a
// model without a path.
func ModelsDir() string {
	ensureDefaultPaths()
	return defaultPaths.ModelsDir
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
