package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ajramos/termtheme/internal/colorspace"
	"github.com/ajramos/termtheme/internal/index"
	"github.com/ajramos/termtheme/internal/palette"
	"github.com/ajramos/termtheme/internal/parsers"
	"github.com/ajramos/termtheme/internal/preview"
	"github.com/ajramos/termtheme/internal/theme"
)

var (
	previewSets     []string
	previewSwaps    []string
	previewShowSrc  bool
	previewNoSample bool
)

func init() {
	previewCmd.Flags().StringArrayVar(&previewSets, "set", nil, "override a slot before mapping, e.g. --set background=#101014")
	previewCmd.Flags().StringArrayVar(&previewSwaps, "swap", nil, "swap two slots before mapping, e.g. --swap red,blue")
	previewCmd.Flags().BoolVar(&previewShowSrc, "palette", false, "also print the source palette slots")
	previewCmd.Flags().BoolVar(&previewNoSample, "no-sample", false, "skip the legibility sample block")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <scheme>",
	Short: "Derive and display the UI theme for a scheme",
	Long: `Parse a color scheme (an indexed scheme name or a file path),
optionally edit slots, and print the derived semantic theme.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		path, err := resolveScheme(cfg.IndexPath, args[0])
		if err != nil {
			return err
		}
		pal, err := parsers.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		session := palette.NewEditSession(pal)
		if err := applyEdits(session); err != nil {
			return err
		}
		pal = session.Working()
		if session.Dirty() {
			log.Debug("previewing edited palette", "scheme", pal.Name())
		}

		doc := theme.NewMapper(cfg.MapperOptions()).Map(pal)

		if previewShowSrc {
			fmt.Print(preview.Palette(pal))
			fmt.Println()
		}
		fmt.Print(preview.Document(doc))
		if !previewNoSample {
			fmt.Println()
			fmt.Print(preview.SampleText(doc))
		}
		return nil
	},
}

// resolveScheme accepts a direct file path or an indexed scheme name.
func resolveScheme(indexPath, ref string) (string, error) {
	if _, err := os.Stat(ref); err == nil {
		return ref, nil
	}
	ctx := context.Background()
	store, err := index.Open(ctx, indexPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	entry, ok, err := store.Get(ctx, ref)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("scheme %q is neither a file nor an indexed name", ref)
	}
	return entry.Path, nil
}

func applyEdits(session *palette.EditSession) error {
	for _, set := range previewSets {
		name, hex, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want slot=#rrggbb", set)
		}
		slot, ok := palette.SlotByName(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown slot %q", name)
		}
		c, err := colorspace.ParseHex(strings.TrimSpace(hex))
		if err != nil {
			return err
		}
		session.SetSlot(slot, c)
	}
	for _, swap := range previewSwaps {
		a, b, ok := strings.Cut(swap, ",")
		if !ok {
			return fmt.Errorf("invalid --swap %q, want slotA,slotB", swap)
		}
		sa, okA := palette.SlotByName(strings.TrimSpace(a))
		sb, okB := palette.SlotByName(strings.TrimSpace(b))
		if !okA || !okB {
			return fmt.Errorf("unknown slot in --swap %q", swap)
		}
		session.Swap(sa, sb)
	}
	return nil
}
