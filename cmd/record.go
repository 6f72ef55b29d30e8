package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage disinfection logs",
	Long:  `Create, list, and delete completed disinfection records.`,
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all disinfection records",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		records, err := newService().ListDisinfections(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
			os.Exit(1)
		}

		if len(records) == 0 {
			fmt.Println("No disinfection records found.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tBAY\tPERFORMED\tSCHEDULED\tMETHOD\tSTATUS")
		for _, record := range records {
			performed, scheduled := "-", "-"
			if record.PerformedDate != nil {
				performed = *record.PerformedDate
			}
			if record.ScheduledDate != nil {
				scheduled = *record.ScheduledDate
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
				record.ID, record.BayNumber, performed, scheduled, record.Method, record.ScheduleStatus)
		}
		w.Flush()
	},
}

var recordCreateCmd = &cobra.Command{
	Use:   "create [bay] [date] [method]",
	Short: "Log a completed disinfection",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		bay, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid bay number: %v\n", err)
			os.Exit(1)
		}

		note, _ := cmd.Flags().GetString("note")
		id, err := newService().CreateDisinfection(ctx, bay, args[1], args[2], note)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating record: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Disinfection record %d created for bay %d.\n", id, bay)
	},
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a disinfection record by ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid ID: %v\n", err)
			os.Exit(1)
		}

		existed, err := newService().DeleteDisinfection(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
			os.Exit(1)
		}
		if !existed {
			fmt.Printf("Record ID %d did not exist.\n", id)
			return
		}
		fmt.Printf("Record ID %d deleted successfully.\n", id)
	},
}

func init() {
	recordCreateCmd.Flags().String("note", "", "optional free-text note")
	rootCmd.AddCommand(recordCmd)
	recordCmd.AddCommand(recordListCmd)
	recordCmd.AddCommand(recordCreateCmd)
	recordCmd.AddCommand(recordDeleteCmd)
}
