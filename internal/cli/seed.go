package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate empty reference tables",
		Long:  "Fill any empty device or browser table from the built-in corpus. Tables that already have rows are left alone.",
		Run:   runSeed,
	}

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	report, err := s.EnsureSeeded(cmd.Context())
	if err != nil {
		exitErr("seed", err)
	}

	if formatFlag == "text" {
		for _, table := range slices.Sorted(maps.Keys(report.Counts)) {
			fmt.Printf("%s: %d\n", table, report.Counts[table])
		}
		return
	}
	printJSON(report)
}
