package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"bay-sanitation/internal/status"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage scheduled disinfections",
	Long:  `Create, list, fulfill, cancel and complete scheduled disinfections.`,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending schedules, most urgent first",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		pending, err := newService().ListPending(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing schedules: %v\n", err)
			os.Exit(1)
		}

		if len(pending) == 0 {
			fmt.Println("No pending schedules.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tBAY\tSCHEDULED\tMETHOD\tNOTE")
		for _, entry := range pending {
			scheduled := "-"
			if entry.ScheduledDate != nil {
				scheduled = *entry.ScheduledDate
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
				entry.ID, entry.BayNumber, scheduled, entry.Method, entry.Note)
		}
		w.Flush()
	},
}

var scheduleCreateCmd = &cobra.Command{
	Use:   "create [bay] [date] [method]",
	Short: "Schedule a disinfection",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		bay, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid bay number: %v\n", err)
			os.Exit(1)
		}

		note, _ := cmd.Flags().GetString("note")
		id, err := newService().Schedule(ctx, bay, args[1], args[2], note)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating schedule: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Schedule %d created for bay %d on %s.\n", id, bay, args[1])
	},
}

var scheduleFulfillCmd = &cobra.Command{
	Use:   "fulfill [id]",
	Short: "Mark a pending schedule as done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid ID: %v\n", err)
			os.Exit(1)
		}

		date, _ := cmd.Flags().GetString("date")
		ok, err := newService().Fulfill(ctx, id, date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fulfilling schedule: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Printf("Schedule ID %d not found or not pending.\n", id)
			os.Exit(1)
		}
		fmt.Printf("Schedule ID %d fulfilled.\n", id)
	},
}

var scheduleCancelCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel a pending schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid ID: %v\n", err)
			os.Exit(1)
		}

		ok, err := newService().Cancel(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error cancelling schedule: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Printf("Schedule ID %d not found or not pending.\n", id)
			os.Exit(1)
		}
		fmt.Printf("Schedule ID %d cancelled.\n", id)
	},
}

var scheduleCompleteCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Record a completion dated today and close the schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid ID: %v\n", err)
			os.Exit(1)
		}

		newID, err := newService().CompleteFromSchedule(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error completing schedule: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Schedule ID %d completed, new record %d.\n", id, newID)
	},
}

var scheduleNextCmd = &cobra.Command{
	Use:   "next [bay]",
	Short: "Show when a bay is next due",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		bay, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid bay number: %v\n", err)
			os.Exit(1)
		}

		due, err := newService().NextDueDate(ctx, bay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing next due date: %v\n", err)
			os.Exit(1)
		}
		if due == nil {
			fmt.Printf("Bay %d has no completed disinfection on record.\n", bay)
			return
		}
		fmt.Printf("Bay %d is next due on %s.\n", bay, due.Format(status.DateLayout))
	},
}

func init() {
	scheduleCreateCmd.Flags().String("note", "", "optional free-text note")
	scheduleFulfillCmd.Flags().String("date", "", "performed date (defaults to today)")
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleCreateCmd)
	scheduleCmd.AddCommand(scheduleFulfillCmd)
	scheduleCmd.AddCommand(scheduleCancelCmd)
	scheduleCmd.AddCommand(scheduleCompleteCmd)
	scheduleCmd.AddCommand(scheduleNextCmd)
}
