package stat

import (
	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/cmd/srctidy/internal/cleanupcli"
)

// NewCommand creates the stat command
func NewCommand() *cobra.Command {
	var flags cleanupcli.Flags

	cmd := &cobra.Command{
		Use:     "stat [path]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.NewPipeline(cleanupcli.Target(args), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := p.Collect(); err != nil {
				return err
			}
			if err := p.ScanTypes(cmd.Context(), true); err != nil {
				return err
			}
			p.PrintMimeCounts()
			return nil
		},
	}

	flags.Register(cmd)
	return cmd
}
