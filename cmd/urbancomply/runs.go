package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	runsLimit      int
	runsFailedOnly bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List validation run history",
	Long:  `Displays past validation runs from the local history database, newest first.`,
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to show (0 = no limit)")
	runsCmd.Flags().BoolVar(&runsFailedOnly, "failed", false, "Show only failed runs")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(runsLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No validation runs recorded yet")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Input", "Status", "Errors", "Warnings", "Rows", "When", "Published"})

	shown := 0
	for _, run := range runs {
		if runsFailedOnly && run.Status == "PASS" {
			continue
		}
		published := ""
		if run.Published {
			published = "✓"
		}
		t.AppendRow(table.Row{
			run.ID[:8],
			run.InputFile,
			run.Status,
			run.TotalErrors,
			run.TotalWarnings,
			humanize.Comma(int64(run.RowsProcessed)),
			humanize.Time(run.CreatedAt),
			published,
		})
		shown++
	}
	t.Render()

	fmt.Printf("\n%d run(s) shown\n", shown)
	return nil
}
