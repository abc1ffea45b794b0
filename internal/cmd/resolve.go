package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rewindfs/rewindfs/rewind"
)

// NewResolveCmd creates and returns the resolve subcommand for the
// rewindfs CLI. It resolves one path at one instant without mounting.
func NewResolveCmd() *cobra.Command {
	var (
		archiveDir string
		at         string
	)

	cmd := &cobra.Command{
		Use:   "resolve SYNC_ROOT REL_PATH",
		Short: "Resolve the physical file backing a path at an instant",
		Long: `Resolve which physical file held REL_PATH's content at the given
instant, without mounting. Prints the version state, its boundary, and
the physical path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := parseWhen(at)
			if err != nil {
				return err
			}

			tree := rewind.NewTree(args[0], rewind.WithArchiveDir(archiveDir))
			v, err := tree.Resolve(ts, args[1])
			if err != nil {
				return err
			}

			state := "archived"
			if v.Live {
				state = "live"
			}
			fmt.Printf("%s\t%d (%s)\t%s\n",
				state, v.Boundary, time.Unix(v.Boundary, 0).UTC().Format(time.RFC3339), v.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&archiveDir, "archive-dir", "a", rewind.DefaultArchiveDir, "archive location relative to the sync root")
	cmd.Flags().StringVar(&at, "at", "", "instant to view: unix seconds, RFC3339, or YYYY-MM-DD (default now)")

	return cmd
}
