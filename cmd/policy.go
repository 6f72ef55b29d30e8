package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Manage the global interval policy",
}

var policyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current interval policy",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		policy, err := newService().GetPolicy(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading policy: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Interval: %d days\n", policy.IntervalDays)
		fmt.Printf("Default time: %s\n", policy.DefaultTime)
		fmt.Printf("Notify before: %d days\n", policy.NotifyBeforeDays)
	},
}

var policySetCmd = &cobra.Command{
	Use:   "set [interval-days]",
	Short: "Set the re-disinfection interval in days",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		days, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid interval: %v\n", err)
			os.Exit(1)
		}

		if err := newService().SetPolicy(ctx, days); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating policy: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Interval policy set to %d days.\n", days)
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.AddCommand(policyShowCmd)
	policyCmd.AddCommand(policySetCmd)
}
