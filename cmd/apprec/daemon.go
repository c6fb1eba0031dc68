package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"app-recommender/internal/service"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Periodically refresh scans and recommendations",
	Long: `daemon keeps the recommendation set fresh by running the full
scan, usage and recommend pass on a fixed interval until interrupted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleInterval(a.cfg.Daemon.Interval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			a.refresh(jobCtx)
		}); err != nil {
			return fmt.Errorf("schedule refresh: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()

		// One pass up front so a fresh install has data before the first tick.
		a.refresh(ctx)

		a.log.Info("daemon started", zap.Duration("interval", a.cfg.Daemon.Interval))
		<-ctx.Done()
		a.log.Info("shutdown complete")
		return nil
	},
}
