package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rewindfs/rewindfs/rewind"
)

// NewCheckCmd creates and returns the check subcommand for the rewindfs
// CLI. It audits the archive tree of a sync root.
func NewCheckCmd() *cobra.Command {
	var (
		rootPath   string
		archiveDir string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the archive tree of a sync root",
		Long: `Walk the archive tree and report what the rewindable view will be
able to reconstruct: how many logical files have archived versions, which
of them no longer exist live (deleted files), and which archive
directories have no live counterpart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCheck(rootPath, archiveDir, verbose)
		},
	}

	cmd.Flags().StringVarP(&rootPath, "path", "p", "", "sync root to audit (required)")
	cmd.Flags().StringVarP(&archiveDir, "archive-dir", "a", rewind.DefaultArchiveDir, "archive location relative to the sync root")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every deleted file and orphan directory")

	cmd.MarkFlagRequired("path")

	return cmd
}

var checkSuffixRE = regexp.MustCompile(`\.[0-9]+$`)

func runCheck(rootPath, archiveDir string, verbose bool) error {
	info, err := os.Stat(rootPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("sync root %s: %w", rootPath, rewind.ErrRootNotFound)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("sync root %s: %w", rootPath, rewind.ErrRootNotDir)
	}

	archRoot := filepath.Join(rootPath, filepath.FromSlash(archiveDir))
	if _, err := os.Stat(archRoot); os.IsNotExist(err) {
		fmt.Printf("no archive tree at %s; nothing to rewind to\n", archRoot)
		return nil
	}

	var (
		versionCount int
		orphanDirs   []string
		deleted      []string
		tracked      = make(map[string]bool) // rel logical path -> exists live
	)

	err = filepath.WalkDir(archRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(archRoot, path)
		if err != nil || rel == "." {
			return nil
		}

		livePath := filepath.Join(rootPath, rel)
		if d.IsDir() {
			if info, err := os.Stat(livePath); err != nil || !info.IsDir() {
				orphanDirs = append(orphanDirs, rel)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		versionCount++
		logical := checkSuffixRE.ReplaceAllString(rel, "")
		if _, seen := tracked[logical]; !seen {
			info, err := os.Lstat(filepath.Join(rootPath, logical))
			tracked[logical] = err == nil && info.Mode().IsRegular()
		}
		return nil
	})
	if err != nil {
		return err
	}

	for logical, live := range tracked {
		if !live {
			deleted = append(deleted, logical)
		}
	}
	sort.Strings(deleted)
	sort.Strings(orphanDirs)

	fmt.Printf("archive tree: %s\n", archRoot)
	fmt.Printf("  archived versions:  %d\n", versionCount)
	fmt.Printf("  logical files:      %d\n", len(tracked))
	fmt.Printf("  deleted files:      %d\n", len(deleted))
	fmt.Printf("  orphan directories: %d\n", len(orphanDirs))

	if verbose {
		for _, rel := range deleted {
			fmt.Printf("  deleted: %s\n", rel)
		}
		for _, rel := range orphanDirs {
			fmt.Printf("  orphan dir: %s\n", rel)
		}
	}
	return nil
}
