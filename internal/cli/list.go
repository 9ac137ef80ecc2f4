package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajramos/termtheme/internal/index"
)

var listPopularFirst bool

func init() {
	listCmd.Flags().BoolVar(&listPopularFirst, "popular-first", true, "surface well-known schemes at the top")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed color schemes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := context.Background()
		store, err := index.Open(ctx, cfg.IndexPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(ctx)
		if err != nil {
			return err
		}
		if listPopularFirst {
			index.SortPopularFirst(entries)
		}
		printEntries(entries)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search indexed color schemes",
	Long:  "Search the index; every query character must appear in the scheme name in order.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := context.Background()
		store, err := index.Open(ctx, cfg.IndexPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Search(ctx, args[0])
		if err != nil {
			return err
		}
		printEntries(entries)
		return nil
	},
}

func printEntries(entries []index.Entry) {
	if len(entries) == 0 {
		fmt.Println("No schemes indexed. Run 'termtheme scan <dir>' first.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tPATH")
	for _, e := range entries {
		marker := ""
		if index.IsPopular(e.Name) {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\n", e.Name, marker, e.Source, e.Path)
	}
	w.Flush()
}
