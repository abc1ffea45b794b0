package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	_ "bazil.org/fuse/fs/fstestutil"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rewindfs/rewindfs/rewind"
	"github.com/rewindfs/rewindfs/rewindfs"
	"github.com/rewindfs/rewindfs/version"
)

// NewMountCmd creates and returns the mount subcommand for the rewindfs
// CLI. It mounts the read-only rewindable view of a sync root.
func NewMountCmd() *cobra.Command {
	var (
		archiveDir string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "mount SYNC_ROOT MOUNTPOINT",
		Short: "Mount the rewindable view of a sync root",
		Long: `Mount a read-only, time-indexed view of a sync root.

SYNC_ROOT is the synchronized directory, which must contain the sync
tool's archive of superseded versions (` + rewind.DefaultArchiveDir + ` by default).
MOUNTPOINT is the directory where the view will be mounted.

Under the mountpoint, the first path segment is the unix timestamp to
view: /mnt/1451059200/photos/cat.jpg is cat.jpg as it stood at that
second.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runMount(args[0], args[1], archiveDir, verbose)
		},
	}

	cmd.Flags().StringVarP(&archiveDir, "archive-dir", "a", rewind.DefaultArchiveDir, "archive location relative to the sync root")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runMount(root, mountpoint, archiveDir string, verbose bool) error {
	logger := newLogger(verbose)
	slog.SetDefault(logger)

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return fmt.Errorf("sync root %s: %w", root, rewind.ErrRootNotFound)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("sync root %s: %w", root, rewind.ErrRootNotDir)
	}
	if pathsOverlap(root, mountpoint) {
		return fmt.Errorf("sync root %s and mountpoint %s overlap", root, mountpoint)
	}

	tree := rewind.NewTree(root, rewind.WithArchiveDir(archiveDir))
	filesystem := rewindfs.New(tree, logger)

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("rewindfs"),
		fuse.Subtype("rewindfs"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		logger.Info("received interrupt, unmounting", "mountpoint", mountpoint)
		if err := fuse.Unmount(mountpoint); err != nil {
			logger.Error("unmount failed", "error", err)
		}
	}()

	logger.Info("mounted",
		"version", version.GetVersion(),
		"mountpoint", mountpoint,
		"root", root,
		"archive", archiveDir,
	)
	return fs.Serve(c, filesystem)
}

// newLogger builds the CLI logger. The core never logs; everything the
// process says goes through this handler.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := os.Stderr
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	}))
}

// pathsOverlap reports whether one path contains the other. Mounting the
// view inside the sync root (or over it) would make the projection
// observe itself.
func pathsOverlap(path1, path2 string) bool {
	p1 := filepath.Clean(path1)
	p2 := filepath.Clean(path2)
	if p1 == p2 {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(p1, p2+sep) || strings.HasPrefix(p2, p1+sep)
}
