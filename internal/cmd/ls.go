package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rewindfs/rewindfs/rewind"
)

// NewLsCmd creates and returns the ls subcommand for the rewindfs CLI.
// It lists a directory at one instant without mounting.
func NewLsCmd() *cobra.Command {
	var (
		archiveDir string
		at         string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "ls SYNC_ROOT [REL_DIR]",
		Short: "List a directory at an instant",
		Long: `List the entries of REL_DIR (the sync root when omitted) as they
stood at the given instant, merging live and archived names. A name can
appear twice when a path switched between file and directory over time.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := parseWhen(at)
			if err != nil {
				return err
			}

			rel := ""
			if len(args) == 2 {
				rel = args[1]
			}

			tree := rewind.NewTree(args[0], rewind.WithArchiveDir(archiveDir))
			names, err := tree.List(ts, rel)
			if err != nil {
				return err
			}

			for _, name := range names {
				if !all && (name == "." || name == "..") {
					continue
				}
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&archiveDir, "archive-dir", "a", rewind.DefaultArchiveDir, "archive location relative to the sync root")
	cmd.Flags().StringVar(&at, "at", "", "instant to view: unix seconds, RFC3339, or YYYY-MM-DD (default now)")
	cmd.Flags().BoolVar(&all, "all", false, "include the . and .. entries")

	return cmd
}
