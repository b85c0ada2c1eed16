package eol

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/cmd/srctidy/internal/cleanupcli"
	"github.com/dmlevin/srctidy/pkg/errors"
)

// NewCommand creates the eol command
func NewCommand() *cobra.Command {
	var flags cleanupcli.Flags

	cmd := &cobra.Command{
		Use:     "eol [path]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			p, err := flags.NewPipeline(cleanupcli.Target(args), out)
			if err != nil {
				return err
			}
			if err := p.Collect(); err != nil {
				return err
			}
			if err := p.ScanTypes(cmd.Context(), true); err != nil {
				return err
			}

			result, err := p.FixEOL()
			if err != nil {
				return err
			}
			if len(result.Broken) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			for _, b := range result.Broken {
				fmt.Fprintf(out, "    %s: %v\n", b.Entry.Path, b.Err)
			}
			return errors.Newf(errors.ErrEncoding,
				"%d files skipped: invalid UTF-8 content, run srctidy utf first", len(result.Broken))
		},
	}

	flags.Register(cmd)
	return cmd
}
