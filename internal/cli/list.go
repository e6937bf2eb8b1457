package cli

import (
	"fmt"

	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded user agents, newest first",
		Run:   runList,
	}

	cmd.Flags().StringP("device", "d", "both", "Device type: android, ios or both")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	device, _ := cmd.Flags().GetString("device")
	limit, _ := cmd.Flags().GetInt("limit")

	pref, err := model.ParsePreference(device)
	if err != nil {
		exitErr("list", err)
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

	agents, err := s.ListAgents(cmd.Context(), store.ListParams{
		DeviceType: dt,
		Limit:      limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if formatFlag == "text" {
		for _, a := range agents {
			fmt.Println(a.Text)
		}
		return
	}
	printJSON(agents)
}
