// Package cleanupcli carries the flags and wiring shared by the cleanup-based
// commands (stat, utf, eol, exe).
package cleanupcli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/pkg/cleanup"
	"github.com/dmlevin/srctidy/pkg/config"
)

// Flags are the common options of commands that run the cleanup pipeline.
type Flags struct {
	ConfigPath  string
	ProjectRoot string
}

// Register adds the shared flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.ConfigPath, "config", "c", "", "config file, TOML or YAML (default: embedded defaults)")
	cmd.Flags().StringVar(&f.ProjectRoot, "project-root", "", "root the configured path patterns resolve against (default: current directory)")
}

// NewPipeline loads the configuration and prepares a pipeline over target.
func (f *Flags) NewPipeline(target string, out io.Writer) (*cleanup.Pipeline, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	return cleanup.New(target, f.ProjectRoot, cfg, out)
}

// Target interprets an optional single positional argument, defaulting to the
// current directory.
func Target(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}
