package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/urbancomply/urbancomply/internal/config"
	"github.com/urbancomply/urbancomply/pkg/models"
)

// Publisher sends validation run summaries to an MQTT broker so downstream
// dashboards can track compliance status per building file.
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
}

// New creates a publisher and connects to the configured broker
func New(cfg config.MQTTConfig, topicPrefix string) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID("urbancomply")
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	// Create and connect client
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
	}, nil
}

// runPayload is the message shape published per validation run
type runPayload struct {
	ID            string `json:"id"`
	InputFile     string `json:"input_file"`
	Status        string `json:"status"`
	TotalErrors   int    `json:"total_errors"`
	TotalWarnings int    `json:"total_warnings"`
	RowsProcessed int    `json:"rows_processed"`
	Timestamp     string `json:"timestamp"`
}

// PublishRun sends one run summary, retained, to <prefix>/runs/<id>
func (p *Publisher) PublishRun(run models.Run) error {
	payload := runPayload{
		ID:            run.ID,
		InputFile:     run.InputFile,
		Status:        run.Status,
		TotalErrors:   run.TotalErrors,
		TotalWarnings: run.TotalWarnings,
		RowsProcessed: run.RowsProcessed,
		Timestamp:     run.CreatedAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	topic := fmt.Sprintf("%s/runs/%s", p.topicPrefix, run.ID)
	token := p.client.Publish(topic, 1, true, body)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing run %s: %w", run.ID, token.Error())
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
