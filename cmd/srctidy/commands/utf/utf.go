package utf

import (
	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/cmd/srctidy/internal/cleanupcli"
	"github.com/dmlevin/srctidy/pkg/errors"
)

// NewCommand creates the utf command
func NewCommand() *cobra.Command {
	var (
		flags cleanupcli.Flags
		fix   bool
	)

	cmd := &cobra.Command{
		Use:     "utf [path]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := flags.NewPipeline(cleanupcli.Target(args), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := p.Collect(); err != nil {
				return err
			}
			if err := p.ScanTypes(ctx, true); err != nil {
				return err
			}

			nonUTF, err := p.FindNonUTF()
			if err != nil {
				return err
			}

			if fix {
				return p.ConvertNonUTF(ctx, nonUTF)
			}

			broken, err := p.ProbeBroken(ctx, nonUTF)
			if err != nil {
				return err
			}
			p.PrintBroken(broken)
			if len(broken) > 0 {
				return errors.Newf(errors.ErrEncoding,
					"%d files with corrupted or mixed encoding", len(broken))
			}
			return nil
		},
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&fix, "fix", false, "convert non-UTF-8 files to UTF-8 in place with iconv")
	return cmd
}
