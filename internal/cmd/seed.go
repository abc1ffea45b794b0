package cmd

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rewindfs/rewindfs/rewind"
)

// NewSeedCmd creates and returns the seed subcommand for the rewindfs
// CLI. It generates a demo sync root with archived file versions.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a demo sync root with archived versions",
		Long: `Generate a sync root for trying out rewindfs without a real sync
tool. Files get randomized directory placement and one to four versions
each: older versions land in the archive tree with staggered mtimes, the
newest stays live. Some files are "deleted" and exist only as archived
versions. Each version's content is a single UUID line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runSeed(outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to the sync root to create (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 200, "number of logical files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

var seedDirs = []string{
	"",
	"docs",
	"docs/reports",
	"photos",
	"photos/2024",
	"music/albums",
	"projects/notes",
}

func runSeed(outputPath string, fileCount int, verbose bool) error {
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create sync root: %w", err)
	}

	// A year of history ending now, one version boundary roughly every
	// few hours of it.
	endTime := time.Now().Unix()
	startTime := endTime - 365*24*3600

	filesCreated := 0
	versionsCreated := 0

	for filesCreated < fileCount {
		dirIdx, _ := rand.Int(rand.Reader, big.NewInt(int64(len(seedDirs))))
		nameNum, _ := rand.Int(rand.Reader, big.NewInt(0xFFFFFFFF))
		name := fmt.Sprintf("%08x.txt", nameNum.Int64())
		relDir := seedDirs[dirIdx.Int64()]

		liveDir := filepath.Join(outputPath, filepath.FromSlash(relDir))
		archDir := filepath.Join(outputPath, filepath.FromSlash(rewind.DefaultArchiveDir), filepath.FromSlash(relDir))

		if _, err := os.Lstat(filepath.Join(liveDir, name)); err == nil {
			continue
		}

		nVersions, _ := rand.Int(rand.Reader, big.NewInt(4))
		versions := int(nVersions.Int64()) + 1

		// One in five logical files is deleted: all its versions are
		// archived and nothing stays live.
		deletedRand, _ := rand.Int(rand.Reader, big.NewInt(5))
		isDeleted := deletedRand.Int64() == 0

		span := endTime - startTime
		base, _ := rand.Int(rand.Reader, big.NewInt(span/2))
		mtime := startTime + base.Int64()

		for v := 0; v < versions; v++ {
			last := v == versions-1

			var target string
			switch {
			case last && !isDeleted:
				target = filepath.Join(liveDir, name)
			case v == 0:
				target = filepath.Join(archDir, name)
			default:
				target = filepath.Join(archDir, name+"."+strconv.Itoa(v))
			}

			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			content := uuid.New().String() + "\n"
			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				return err
			}
			ts := time.Unix(mtime, 0)
			if err := os.Chtimes(target, ts, ts); err != nil {
				return err
			}
			versionsCreated++

			step, _ := rand.Int(rand.Reader, big.NewInt(span/8))
			mtime += step.Int64() + 1
		}

		filesCreated++
		if verbose && filesCreated%50 == 0 {
			fmt.Printf("created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("created %d logical files (%d versions) under %s\n",
			filesCreated, versionsCreated, outputPath)
	}
	return nil
}
