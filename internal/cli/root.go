// Package cli implements the uaforge CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rcliao/uaforge/internal/config"
	"github.com/rcliao/uaforge/internal/engine"
	"github.com/rcliao/uaforge/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string

	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "uaforge",
	Short: "Plausible mobile user-agent generator",
	Long:  "Generates Android and iOS browser user agents from a weighted device corpus, scores them for plausibility and keeps a ledger of every string handed out.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c, err := config.Load()
		if err != nil {
			exitErr("load config", err)
		}
		cfg = c
		logger = cfg.Logger(os.Stderr)
		slog.SetDefault(logger)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: $UAFORGE_DB or ~/.uaforge/useragents.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// openEngine opens the store, seeds empty reference tables and builds an
// engine from the loaded config.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.SQLiteStore, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	e := engine.New(s, engine.Options{
		Threshold:   cfg.Threshold,
		MaxAttempts: cfg.MaxAttempts,
		Logger:      logger,
	})
	if _, err := e.EnsureSeeded(cmd.Context()); err != nil {
		s.Close()
		return nil, nil, err
	}
	return e, s, nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
