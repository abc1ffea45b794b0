package cmd

import (
	"github.com/rewindfs/rewindfs/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the rewindfs
// CLI. It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rewindfs",
		Short: "rewindfs - mount a sync directory as a rewindable filesystem",
		Long: `rewindfs shows on-the-fly snapshots of a continuously-synchronized
directory at arbitrary points in the past, reconstructed from the live
tree and the sync tool's archive of superseded file versions.

The instant to view is selected with a unix timestamp as the first path
segment under the mountpoint:

    rewindfs mount ~/sync/photos /mnt
    ls /mnt/$(date --date="2015-12-25 8:00 PST" +%s)

Use subcommands to perform different operations:
  - mount: mount the rewindable view of a sync root
  - resolve: resolve one path at one instant without mounting
  - ls: list a directory at one instant without mounting
  - versions: show the full version timeline of a file
  - check: audit the archive tree
  - seed: generate a demo sync root with archived versions`,
		Version: version.GetFullVersion(),
	}

	groupFilesystem := "filesystem"
	groupQuery := "query"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupQuery,
		Title: "Query Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	mountCmd := NewMountCmd()
	resolveCmd := NewResolveCmd()
	lsCmd := NewLsCmd()
	versionsCmd := NewVersionsCmd()
	checkCmd := NewCheckCmd()
	seedCmd := NewSeedCmd()

	mountCmd.GroupID = groupFilesystem
	resolveCmd.GroupID = groupQuery
	lsCmd.GroupID = groupQuery
	versionsCmd.GroupID = groupQuery
	checkCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
