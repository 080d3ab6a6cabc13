package main

import (
	"path/filepath"

	"github.com/spf13/pflag"
)

// Input contains the flags shared by every command.
type Input struct {
	configPath  string
	networkPath string
	mstMethod   string
	verbose     bool

	// per-command flags
	avoid   string
	via     string
	ewdPath string
	source  int
	by      string
}

// resolve makes path relative to the config file directory, when a config
// file is in use and path is relative.
func (i *Input) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || i.configPath == "" {
		return path
	}

	return filepath.Join(filepath.Dir(i.configPath), path)
}

// bindPersistent registers the flags every command accepts.
func (i *Input) bindPersistent(fs *pflag.FlagSet) {
	fs.StringVarP(&i.configPath, "config", "c", "", "path to TOML config file")
	fs.StringVarP(&i.networkPath, "network", "n", "", "network file (.txt, .yaml, .toml)")
	fs.StringVar(&i.mstMethod, "mst", "", "MST method: kruskal, prim or lazy-prim")
	fs.BoolVarP(&i.verbose, "verbose", "v", false, "verbose output")
}
