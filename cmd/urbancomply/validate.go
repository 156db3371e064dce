package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/urbancomply/urbancomply/internal/validator"
	"github.com/urbancomply/urbancomply/pkg/models"
)

var (
	validateOutput   string
	validateMin      float64
	validateMax      float64
	validateFormat   string
	validateDropDups bool
	validateVerbose  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate utility data files",
	Long: `Validates one or more utility data CSV files for LL84/33 compliance.
Checks column structure, date continuity, numeric quality, duplicates, and value
thresholds, then writes a JSON validation report and records the run in the local
history database. Exits non-zero if any file fails validation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "Report output path (single input only; default: <report_dir>/<name>_validation_report.json)")
	validateCmd.Flags().Float64Var(&validateMin, "min-value", 0.0, "Minimum acceptable value for numeric columns")
	validateCmd.Flags().Float64Var(&validateMax, "max-value", 1e9, "Maximum acceptable value for numeric columns")
	validateCmd.Flags().StringVar(&validateFormat, "date-format", "", "Expected date layout, e.g. 2006-01-02 (auto-detected if not specified)")
	validateCmd.Flags().BoolVar(&validateDropDups, "drop-duplicates", false, "Exclude duplicate rows from the processed row count")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show all errors and warnings instead of the first 5")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override config; config overrides built-in defaults
	opts := validator.Options{
		MinValue:       cfg.GetMinValue(),
		MaxValue:       cfg.GetMaxValue(),
		DateFormat:     cfg.GetDateFormat(),
		DropDuplicates: cfg.Validation.DropDuplicates,
	}
	if cmd.Flags().Changed("min-value") {
		opts.MinValue = validateMin
	}
	if cmd.Flags().Changed("max-value") {
		opts.MaxValue = validateMax
	}
	if cmd.Flags().Changed("date-format") {
		opts.DateFormat = validateFormat
	}
	if cmd.Flags().Changed("drop-duplicates") {
		opts.DropDuplicates = validateDropDups
	}

	// Open run history database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	v := validator.New(opts)

	failed := 0
	for _, input := range args {
		report := v.ValidateFile(input)

		outputPath := validateOutput
		if outputPath == "" {
			outputPath = defaultReportPath(cfg.GetReportDir(), input)
		}
		if err := report.Save(outputPath); err != nil {
			return fmt.Errorf("saving report for %s: %w", input, err)
		}

		run := &models.Run{
			ID:            uuid.New().String(),
			InputFile:     input,
			Status:        report.ValidationStatus,
			TotalErrors:   report.Summary.TotalErrors,
			TotalWarnings: report.Summary.TotalWarnings,
			RowsProcessed: report.Summary.RowsProcessed,
			ReportPath:    outputPath,
			CreatedAt:     time.Now().UTC(),
		}
		if err := db.InsertRun(run); err != nil {
			return fmt.Errorf("recording run for %s: %w", input, err)
		}

		printReport(report)
		fmt.Printf("Report saved to %s\n", outputPath)

		if !report.Passed {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d file(s)", failed, len(args))
	}
	return nil
}

// defaultReportPath derives the report path from the input file name
func defaultReportPath(reportDir, input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(reportDir, stem+"_validation_report.json")
}

func printReport(report *models.Report) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Println("VALIDATION RESULTS")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Input: %s\n", report.InputFile)
	fmt.Printf("Status: %s\n", report.ValidationStatus)
	fmt.Printf("Rows Processed: %d\n", report.Summary.RowsProcessed)
	fmt.Printf("Errors: %d\n", report.Summary.TotalErrors)
	fmt.Printf("Warnings: %d\n", report.Summary.TotalWarnings)

	if len(report.Errors) > 0 {
		fmt.Println("\nErrors Found:")
		printIssues(report.Errors)
	}
	if len(report.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		printIssues(report.Warnings)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func printIssues(issues []models.Issue) {
	shown := len(issues)
	if !validateVerbose && shown > 5 {
		shown = 5
	}
	for _, issue := range issues[:shown] {
		fmt.Printf("  - [%s] %s\n", issue.Kind, issue.Message)
	}
	if shown < len(issues) {
		fmt.Printf("  ... and %d more (use --verbose to show all)\n", len(issues)-shown)
	}
}
