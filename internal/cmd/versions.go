package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"

	"github.com/rewindfs/rewindfs/rewind"
)

// NewVersionsCmd creates and returns the versions subcommand for the
// rewindfs CLI. It prints the full version timeline of one file.
func NewVersionsCmd() *cobra.Command {
	var archiveDir string

	cmd := &cobra.Command{
		Use:   "versions SYNC_ROOT REL_PATH",
		Short: "Show the full version timeline of a file",
		Long: `Show every known version of REL_PATH, oldest first: each archived
version with the instant it was superseded, and the live version with
the instant its content began. The newest archived boundary is shown
snapped to the live boundary, as the filesystem resolves it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			tree := rewind.NewTree(args[0], rewind.WithArchiveDir(archiveDir))
			versions, err := tree.History(args[1])
			if err != nil {
				return err
			}

			for _, v := range versions {
				fmt.Println(formatVersion(v))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&archiveDir, "archive-dir", "a", rewind.DefaultArchiveDir, "archive location relative to the sync root")

	return cmd
}

// versionPalette gives each physical file a stable color, so reruns show
// the same version in the same color.
var versionPalette = []*color.Color{
	color.New(color.FgHiCyan),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiBlue),
	color.New(color.FgHiRed),
}

func versionColor(path string) *color.Color {
	idx := colorhash.HashString(filepath.Base(path)) % len(versionPalette)
	if idx < 0 {
		idx += len(versionPalette)
	}
	return versionPalette[idx]
}

func formatVersion(v rewind.Version) string {
	when := time.Unix(v.Boundary, 0).UTC().Format(time.RFC3339)
	name := versionColor(v.Path).Sprint(v.Path)
	if v.Live {
		return fmt.Sprintf("%s\tlive since %s (%d)", name, when, v.Boundary)
	}
	return fmt.Sprintf("%s\tsuperseded at %s (%d)", name, when, v.Boundary)
}
