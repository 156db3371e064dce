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
	docsYear   int
	docsOutput string
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate LL84/33 process documentation",
	Long:  `Generates the full LL84/33 benchmarking process documentation (workflow, data requirements, validation rules, common errors) as JSON.`,
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().IntVar(&docsYear, "year", time.Now().Year(), "Regulation year")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Save documentation as JSON to this path")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	docs := compliance.NewDocumentation(docsYear)

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Println("PROCESS DOCUMENTATION GENERATED")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Title: %s\n", docs.Title)
	fmt.Printf("Regulation Year: %d\n", docs.RegulationYear)
	fmt.Printf("Workflow Steps: %d\n", len(docs.Workflow))
	fmt.Printf("Validation Rules: %d\n", len(docs.ValidationRules))
	fmt.Printf("Common Errors Documented: %d\n", len(docs.CommonErrors))

	if docsOutput != "" {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling documentation: %w", err)
		}
		if err := os.WriteFile(docsOutput, data, 0644); err != nil {
			return fmt.Errorf("writing documentation: %w", err)
		}
		fmt.Printf("\nSaved to: %s\n", docsOutput)
	}

	fmt.Println(strings.Repeat("=", 60))
	return nil
}
