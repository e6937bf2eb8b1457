package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rcliao/uaforge/internal/httpapi"
	"github.com/spf13/cobra"
)

const limiterSweepInterval = 10 * time.Minute

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Long:  "Serve POST /api/generate and GET /api/stats. Generation is rate limited per client IP.",
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: $UAFORGE_ADDR or :8080)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Addr
	}

	e, s, err := openEngine(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := httpapi.NewClientLimiter(cfg.RatePerMinute, cfg.RateBurst)
	go limiter.Run(ctx, limiterSweepInterval)

	router := httpapi.NewRouter(httpapi.NewHandler(e, limiter, logger))
	logger.Info("engine ready",
		"db", getDBPath(), "threshold", e.Threshold(), "max_attempts", e.MaxAttempts())

	if err := httpapi.Serve(ctx, addr, router, logger); err != nil {
		exitErr("serve", err)
	}
}
