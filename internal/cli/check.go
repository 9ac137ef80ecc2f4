package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajramos/termtheme/internal/parsers"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate color scheme files",
	Long: `Parse each file and report the result. A malformed file never
stops the batch; failures are listed per file. Exits non-zero only when
no file parses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := parsers.ParseBatch(args)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, p := range res.Palettes {
			fmt.Fprintf(w, "ok\t%s\t%s\n", p.Name(), p.Source())
		}
		for _, f := range res.Failures {
			fmt.Fprintf(w, "FAIL\t%s\t%v\n", f.File, f.Err)
		}
		w.Flush()

		fmt.Printf("\n%d valid, %d failed\n", len(res.Palettes), len(res.Failures))
		if len(res.Palettes) == 0 && len(res.Failures) > 0 {
			return fmt.Errorf("no valid schemes among %d files", len(args))
		}
		return nil
	},
}
