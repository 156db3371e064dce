package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/urbancomply/urbancomply/internal/publisher"
	"github.com/urbancomply/urbancomply/pkg/models"
)

var (
	publishAll   bool
	publishLimit int
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish validation run summaries via MQTT",
	Long:  `Reads recorded validation runs from the history database and publishes their summaries to the configured MQTT broker for downstream dashboards.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "Force republish all runs (ignore published flag)")
	publishCmd.Flags().IntVar(&publishLimit, "limit", 0, "Limit number of runs to publish (0 = no limit)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.MQTT.Enabled {
		return fmt.Errorf("MQTT is not enabled in config")
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT, cfg.GetTopicPrefix())
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Get runs based on --all flag
	var runs []models.Run
	if publishAll {
		runs, err = db.ListRuns(0)
	} else {
		runs, err = db.ListUnpublishedRuns()
	}
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		if publishAll {
			fmt.Println("No runs found")
		} else {
			fmt.Println("No unpublished runs found")
		}
		return nil
	}

	// Apply limit if specified
	if publishLimit > 0 && len(runs) > publishLimit {
		runs = runs[:publishLimit]
		fmt.Printf("Limiting to %d runs (--limit flag)\n", publishLimit)
	}

	// Publish each run
	fmt.Printf("Publishing %d run(s)...\n", len(runs))
	published := 0
	for i, run := range runs {
		fmt.Printf("[%d/%d] Publishing %s (%s, %s)... ", i+1, len(runs), run.ID[:8], run.InputFile, run.Status)
		if err := pub.PublishRun(run); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}

		// Mark run as published in database
		if err := db.MarkPublished(run.ID); err != nil {
			fmt.Printf("✓ (warning: failed to mark as published: %v)\n", err)
		} else {
			fmt.Printf("✓\n")
		}
		published++
	}

	fmt.Printf("\nTotal runs published: %d/%d\n", published, len(runs))
	return nil
}
