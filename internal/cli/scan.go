package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ajramos/termtheme/internal/index"
	"github.com/ajramos/termtheme/internal/parsers"
)

var scanValidate bool

func init() {
	scanCmd.Flags().BoolVar(&scanValidate, "validate", false, "parse every scheme and report failures")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Index color scheme files from a folder",
	Long: `Scan a folder (two levels deep) for supported color scheme files
and record them in the local index. With --validate each file is also
parsed; files that fail are reported and left out of the index.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		dir := cfg.ThemesDir
		if len(args) == 1 {
			dir = args[0]
		}

		entries, err := index.ScanFolder(dir)
		if err != nil {
			return fmt.Errorf("scan %s: %w", dir, err)
		}

		// Honor the enabled-sources configuration.
		kept := entries[:0]
		for _, e := range entries {
			if cfg.SourceEnabled(e.Source) {
				kept = append(kept, e)
			} else {
				log.Debug("source disabled, skipping", "name", e.Name, "source", e.Source)
			}
		}
		entries = kept

		if scanValidate {
			paths := make([]string, len(entries))
			for i, e := range entries {
				paths[i] = e.Path
			}
			res := parsers.ParseBatch(paths)
			failed := make(map[string]bool, len(res.Failures))
			for _, f := range res.Failures {
				log.Warn("invalid scheme skipped", "file", f.File, "err", f.Err)
				failed[f.File] = true
			}
			kept = entries[:0]
			for _, e := range entries {
				if !failed[e.Path] {
					kept = append(kept, e)
				}
			}
			entries = kept
		}

		ctx := context.Background()
		store, err := index.Open(ctx, cfg.IndexPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpsertAll(ctx, entries); err != nil {
			return fmt.Errorf("update index: %w", err)
		}
		log.Info("index updated", "dir", dir, "schemes", len(entries))
		return nil
	},
}
