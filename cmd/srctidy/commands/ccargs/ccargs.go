package ccargs

import (
	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/pkg/ccargs"
)

// NewCommand creates the ccargs command
func NewCommand() *cobra.Command {
	var (
		ide    bool
		curdir string
	)

	cmd := &cobra.Command{
		Use:     "ccargs [flags] -- <compiler arguments...>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ccargs.Parse(args, curdir)
			if err != nil {
				return err
			}
			if ide {
				result.RenderIDE(cmd.OutOrStdout())
			} else {
				result.RenderPlain(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ide, "ide", false, "emit include/define lists in IDE project form")
	cmd.Flags().StringVar(&curdir, "curdir", "", "show include paths under this directory as relative")
	return cmd
}
