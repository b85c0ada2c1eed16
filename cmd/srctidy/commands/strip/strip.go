package strip

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/pkg/comment"
	"github.com/dmlevin/srctidy/pkg/errors"
)

// NewCommand creates the strip command
func NewCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "strip <a> <b> | strip --all <path>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) != 1 {
					return errors.New(errors.ErrInvalidInput, "--all takes exactly one path")
				}
				n, err := comment.ConvertTree(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stripped: %d\n", n)
				return nil
			}

			if len(args) != 2 {
				return errors.New(errors.ErrInvalidInput, "difftool mode takes exactly two files")
			}
			return comment.Difftool(cmd.Context(), args[0], args[1], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "strip the leading comment from every file under the path, in place")
	return cmd
}
