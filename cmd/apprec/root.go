package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"app-recommender/internal/service"
)

var (
	scanFlag      bool
	usageFlag     bool
	recommendFlag bool
	showFlag      bool
	limitFlag     int
)

var rootCmd = &cobra.Command{
	Use:   "apprec",
	Short: "Application recommendation engine",
	Long: `apprec recommends applications based on installed packages, observed
usage and hardware, keeping its state in a local SQLite database.

The step flags are not mutually exclusive and always run in the order
scan, usage, recommend, show. Without any flag, show runs by default.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&scanFlag, "scan", false, "Scan installed applications")
	rootCmd.Flags().BoolVar(&usageFlag, "usage", false, "Scan application usage")
	rootCmd.Flags().BoolVar(&recommendFlag, "recommend", false, "Generate recommendations")
	rootCmd.Flags().BoolVar(&showFlag, "show", false, "Show top recommendations")
	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "Limit the number of recommendations shown")
	rootCmd.AddCommand(daemonCmd, preferCmd)
}

// run executes the requested steps in fixed order. A failing step is logged
// and the remaining steps still run; only the final read aborts the command.
func run(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	if scanFlag {
		if err := a.scan.ScanInstalled(ctx); err != nil {
			a.log.Error("scanning installed applications failed", zap.Error(err))
		}
	}
	if usageFlag {
		if err := a.scan.ScanUsage(ctx); err != nil {
			a.log.Error("scanning application usage failed", zap.Error(err))
		}
	}
	if recommendFlag {
		if _, err := a.recommend.Generate(ctx); err != nil {
			a.log.Error("generating recommendations failed", zap.Error(err))
		}
	}
	if showFlag || (!scanFlag && !usageFlag && !recommendFlag) {
		limit := limitFlag
		if limit <= 0 {
			limit = a.cfg.Limit
		}
		recs, err := a.recommend.Top(ctx, limit)
		if err != nil {
			return fmt.Errorf("read recommendations: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), service.FormatRecommendations(recs))
	}
	return nil
}
