package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rcliao/uaforge/internal/engine"
	"github.com/rcliao/uaforge/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate user agents",
		Long:  "Generate one or more distinct user agents. Every result is recorded in the ledger, including ones that never reached the threshold.",
		Run:   runGenerate,
	}

	cmd.Flags().IntP("count", "c", 1, "Number of distinct user agents")
	cmd.Flags().StringP("device", "d", "both", "Device type: android, ios or both")
	cmd.Flags().StringP("output", "o", "", "Write a JSON array of strings to this file")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	device, _ := cmd.Flags().GetString("device")
	output, _ := cmd.Flags().GetString("output")

	pref, err := model.ParsePreference(device)
	if err != nil {
		exitErr("generate", err)
	}
	if count < 1 {
		exitErr("generate", fmt.Errorf("count must be >= 1, got %d", count))
	}

	e, s, err := openEngine(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := e.GenerateBatch(cmd.Context(), count, pref)
	incomplete := errors.Is(err, engine.ErrBatchIncomplete)
	if err != nil && !incomplete {
		exitErr("generate", err)
	}

	if output != "" {
		texts := make([]string, len(results))
		for i, r := range results {
			texts[i] = r.Text
		}
		b, _ := json.MarshalIndent(texts, "", "  ")
		if werr := os.WriteFile(output, append(b, '\n'), 0o644); werr != nil {
			exitErr("write output", werr)
		}
		fmt.Printf(`{"ok":true,"written":%d,"path":%q}`+"\n", len(texts), output)
	} else if formatFlag == "text" {
		for _, r := range results {
			fmt.Println(r.Text)
		}
	} else if count == 1 && len(results) == 1 {
		printJSON(results[0])
	} else {
		printJSON(results)
	}

	if incomplete {
		exitErr("generate", err)
	}
}
