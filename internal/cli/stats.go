package cli

import (
	"fmt"
	"time"

	"github.com/rcliao/uaforge/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show ledger statistics",
		Run:   runStats,
	}

	cmd.Flags().StringP("device", "d", "both", "Device type: android, ios or both")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	device, _ := cmd.Flags().GetString("device")
	pref, err := model.ParsePreference(device)
	if err != nil {
		exitErr("stats", err)
	}
	var dt model.DeviceType
	if pref != model.PreferBoth {
		dt = model.DeviceType(pref)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.DetailedStats(cmd.Context(), getDBPath(), dt)
	if err != nil {
		exitErr("stats", err)
	}

	if formatFlag == "text" {
		fmt.Printf("database: %s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
		fmt.Printf("total: %d\n", stats.Total)
		for _, d := range stats.DeviceTypes {
			fmt.Printf("%s: %d (first %s, last %s)\n", d.DeviceType, d.Count,
				d.FirstGenerated.Format(time.RFC3339), d.LastGenerated.Format(time.RFC3339))
		}
		return
	}
	printJSON(stats)
}
