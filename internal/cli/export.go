package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON",
		Long:  "Export every recorded user agent in creation order. With --strings the output is a plain JSON array that import accepts.",
		Run:   runExport,
	}

	cmd.Flags().Bool("strings", false, "Only output the user agent strings")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	stringsOnly, _ := cmd.Flags().GetBool("strings")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	agents, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	if stringsOnly {
		texts := make([]string, len(agents))
		for i, a := range agents {
			texts[i] = a.Text
		}
		printJSON(texts)
		return
	}
	printJSON(agents)
}
