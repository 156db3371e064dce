package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		Validation: ValidationConfig{
			MinValue:       -10,
			MaxValue:       5e6,
			DateFormat:     "2006-01-02",
			DropDuplicates: true,
		},
		MQTT: MQTTConfig{
			Enabled:     true,
			Broker:      "localhost:1883",
			TopicPrefix: "energy",
		},
		ReportDir: "reports",
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, 0.0, cfg.GetMinValue())
	assert.Equal(t, 1e9, cfg.GetMaxValue())
	assert.Equal(t, "", cfg.GetDateFormat())
	assert.Equal(t, ".", cfg.GetReportDir())
	assert.Equal(t, "urbancomply", cfg.GetTopicPrefix())
}

func TestOverrides(t *testing.T) {
	cfg := &Config{
		Validation: ValidationConfig{MaxValue: 1e6},
		MQTT:       MQTTConfig{TopicPrefix: "buildings"},
		ReportDir:  "/var/reports",
	}

	assert.Equal(t, 1e6, cfg.GetMaxValue())
	assert.Equal(t, "buildings", cfg.GetTopicPrefix())
	assert.Equal(t, "/var/reports", cfg.GetReportDir())
}
