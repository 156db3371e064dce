package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/urbancomply/urbancomply/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long:  `Creates a config file with the default validation thresholds and a disabled MQTT section, ready to edit.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	cfg := &config.Config{
		Validation: config.ValidationConfig{
			MinValue: 0.0,
			MaxValue: 1e9,
		},
		MQTT: config.MQTTConfig{
			Enabled: false,
			Broker:  "localhost:1883",
		},
		ReportDir: ".",
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("✓ Config written to %s\n", path)
	return nil
}
