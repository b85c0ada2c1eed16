package qtproject

import (
	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/pkg/qtproject"
)

// NewCommand creates the qtproject command
func NewCommand() *cobra.Command {
	var opts qtproject.Options

	cmd := &cobra.Command{
		Use:     "qtproject [variants...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Variants = args
			return qtproject.Generate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML project manifest")
	cmd.Flags().StringVar(&opts.RootDir, "root-dir", "", "source root relative manifest paths resolve against")
	cmd.Flags().StringVar(&opts.ProjectDir, "project-dir", "", "output directory for the generated project files")
	cmd.Flags().StringVar(&opts.LocalPath, "local", "", "per-user overlay with path mappings and config overrides")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("root-dir")
	_ = cmd.MarkFlagRequired("project-dir")
	return cmd
}
