package publisher

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-json-experiment/json"
	"go.uber.org/zap"

	"github.com/jgoulah/habitgrid/internal/config"
	"github.com/jgoulah/habitgrid/internal/stats"
	"github.com/jgoulah/habitgrid/pkg/models"
)

const publishTimeout = 10 * time.Second

// Publisher sends habit stats to an MQTT broker
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	logger      *zap.Logger
}

// New connects to the broker described by cfg
func New(cfg config.MQTTConfig, logger *zap.Logger) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID(cfg.GetClientID())
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(false)
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

	return NewWithClient(client, cfg.GetTopicPrefix(), logger), nil
}

// NewWithClient wraps an already connected client
func NewWithClient(client mqtt.Client, topicPrefix string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// HabitState is the retained message published for each habit
type HabitState struct {
	Name           string `json:"name"`
	Color          string `json:"color"`
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	CompletionRate int    `json:"completion_rate"`
	CompletedToday bool   `json:"completed_today"`
	Date           string `json:"date"`
}

// NewHabitState computes the published state of h as of today
func NewHabitState(h models.Habit, today models.Day) HabitState {
	s := stats.Compute(h.Completions, today)
	return HabitState{
		Name:           h.Name,
		Color:          h.Color,
		CurrentStreak:  s.CurrentStreak,
		LongestStreak:  s.LongestStreak,
		CompletionRate: s.CompletionRate,
		CompletedToday: h.Completed(today.String()),
		Date:           today.String(),
	}
}

// Topic returns the state topic for a habit id
func (p *Publisher) Topic(habitID string) string {
	return fmt.Sprintf("%s/%s/state", p.topicPrefix, habitID)
}

// Publish sends the retained state of h as of today
func (p *Publisher) Publish(h models.Habit, today models.Day) error {
	body, err := json.Marshal(NewHabitState(h, today))
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	topic := p.Topic(h.ID)
	token := p.client.Publish(topic, 1, true, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publishing to %s: timed out after %s", topic, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	p.logger.Debug("published habit state", zap.String("topic", topic), zap.Int("bytes", len(body)))
	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
