// Package srctidy assembles the srctidy command line interface.
package srctidy

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/cmd/srctidy/commands/ccargs"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/eol"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/exe"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/qtproject"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/setauthor"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/stat"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/strip"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/sweep"
	"github.com/dmlevin/srctidy/cmd/srctidy/commands/utf"
	"github.com/dmlevin/srctidy/internal/version"
	"github.com/dmlevin/srctidy/pkg/logging"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "srctidy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(stat.NewCommand())
	rootCmd.AddCommand(utf.NewCommand())
	rootCmd.AddCommand(eol.NewCommand())
	rootCmd.AddCommand(exe.NewCommand())
	rootCmd.AddCommand(strip.NewCommand())
	rootCmd.AddCommand(ccargs.NewCommand())
	rootCmd.AddCommand(qtproject.NewCommand())
	rootCmd.AddCommand(setauthor.NewCommand())
	rootCmd.AddCommand(sweep.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "srctidy version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
