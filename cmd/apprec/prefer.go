package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var preferCmd = &cobra.Command{
	Use:   "prefer <category> <score>",
	Short: "Store a manual category preference",
	Long: `prefer records a manual score for a category. Stored preferences
are kept for explicit overrides; the automatic ranking derived from usage
does not read them.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid score %q: expected an integer", args[1])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.prefs.Set(cmd.Context(), args[0], score); err != nil {
			return fmt.Errorf("store preference: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Preference stored: %s = %d\n", args[0], score)
		return nil
	},
}
