package setauthor

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/pkg/errors"
	"github.com/dmlevin/srctidy/pkg/gitauthor"
)

// NewCommand creates the setauthor command
func NewCommand() *cobra.Command {
	var opts gitauthor.Options

	cmd := &cobra.Command{
		Use:     "setauthor --name <name> --email <email> <date> [-- git args...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New(errors.ErrInvalidInput, "date must not be empty")
			}
			opts.Date = args[0]
			opts.ExtraArgs = args[1:]
			return gitauthor.Commit(cmd.Context(), opts, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "author and committer name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "author and committer email")
	cmd.Flags().StringVar(&opts.Time, "time", gitauthor.DefaultTimeSuffix, "time suffix appended to the date")
	cmd.Flags().BoolVar(&opts.Amend, "amend", false, "rewrite HEAD instead of creating a new commit")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
