package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/urbancomply/urbancomply/internal/compliance"
)

var (
	checklistBuildingID string
	checklistYear       int
	checklistOutput     string
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Generate an LL84/33 compliance checklist",
	Long:  `Prints the annual LL84/33 submission checklist, optionally scoped to a building and saved as JSON.`,
	RunE:  runChecklist,
}

func init() {
	checklistCmd.Flags().StringVar(&checklistBuildingID, "building-id", "", "Building identifier (BIN)")
	checklistCmd.Flags().IntVar(&checklistYear, "year", time.Now().Year(), "Compliance year")
	checklistCmd.Flags().StringVarP(&checklistOutput, "output", "o", "", "Save checklist as JSON to this path")
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	checklist := compliance.NewChecklist(checklistBuildingID, checklistYear)

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("COMPLIANCE CHECKLIST - %d\n", checklistYear)
	fmt.Println(strings.Repeat("=", 60))

	if checklistBuildingID != "" {
		fmt.Printf("Building ID: %s\n", checklistBuildingID)
	}
	fmt.Printf("Deadline: %s\n", checklist.Deadline)
	fmt.Println("\nTasks:")

	for _, item := range checklist.Items {
		required := " "
		if item.Required {
			required = "*"
		}
		fmt.Printf("  [ ]%s %d. %s\n", required, item.ID, item.Task)
		if item.Notes != "" {
			fmt.Printf("        Note: %s\n", item.Notes)
		}
	}

	fmt.Println("\n* = Required")
	fmt.Println(strings.Repeat("=", 60))

	if checklistOutput != "" {
		data, err := json.MarshalIndent(checklist, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling checklist: %w", err)
		}
		if err := os.WriteFile(checklistOutput, data, 0644); err != nil {
			return fmt.Errorf("writing checklist: %w", err)
		}
		fmt.Printf("\nSaved to: %s\n", checklistOutput)
	}

	return nil
}
