package sweep

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmlevin/srctidy/pkg/errors"
	"github.com/dmlevin/srctidy/pkg/logging"
)

// NewCommand creates the sweep command
func NewCommand() *cobra.Command {
	var (
		names  []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "sweep [path]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			n, err := Sweep(root, names, dryRun, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed: %d\n", n)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&names, "name", []string{"__pycache__"}, "directory names to remove")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list what would be removed without removing it")
	return cmd
}

// Sweep removes every directory under root whose base name is in names and
// returns how many were removed. Removed subtrees are not descended into.
func Sweep(root string, names []string, dryRun bool, out io.Writer) (int, error) {
	logger := logging.GetLogger("sweep")

	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}

	var doomed []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrScan, "cannot walk %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if _, ok := nameSet[d.Name()]; ok {
			doomed = append(doomed, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, path := range doomed {
		fmt.Fprintf(out, "    %s\n", path)
		if dryRun {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return 0, errors.Wrapf(err, errors.ErrFileWrite, "cannot remove %s", path)
		}
		logger.Debug().Str("path", path).Msg("removed directory")
	}

	return len(doomed), nil
}
