package exe

import (
	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/cmd/srctidy/internal/cleanupcli"
	"github.com/dmlevin/srctidy/pkg/cleanup"
	"github.com/dmlevin/srctidy/pkg/errors"
)

// NewCommand creates the exe command
func NewCommand() *cobra.Command {
	var (
		flags   cleanupcli.Flags
		refRoot string
		list    bool
	)

	cmd := &cobra.Command{
		Use:     "exe [path]",
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
			if err := p.ScanTypes(cmd.Context(), false); err != nil {
				return err
			}

			report, err := p.FixExe(cleanup.ExeOptions{RefRoot: refRoot, Verbose: list})
			if err != nil {
				return err
			}
			if report.NeedsConfig() {
				return errors.New(errors.ErrConfigValid,
					"unclassified executable files found, adjust config and repeat")
			}
			return nil
		},
	}

	flags.Register(cmd)
	cmd.Flags().StringVar(&refRoot, "ref", "", "reference tree: clear bits where the same relative path is non-executable there")
	cmd.Flags().BoolVar(&list, "list", false, "list every fixed file")
	return cmd
}
