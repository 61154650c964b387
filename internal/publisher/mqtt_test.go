package publisher

import (
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/habitgrid/internal/config"
	"github.com/jgoulah/habitgrid/pkg/models"
)

type fakeToken struct {
	err     error
	timeout bool
}

func (t *fakeToken) Wait() bool                     { return !t.timeout }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timeout }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type message struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient records publishes; unused mqtt.Client methods panic via the nil embed
type fakeClient struct {
	mqtt.Client
	sent         []message
	token        *fakeToken
	connected    bool
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, message{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	if c.token != nil {
		return c.token
	}
	return &fakeToken{}
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

var today = models.NewDay(2025, time.October, 15)

func sampleHabit() models.Habit {
	return models.Habit{
		ID:          "h1",
		Name:        "Read",
		Color:       "#40c463",
		CreatedDate: "2025-10-01",
		Completions: map[string]bool{
			"2025-10-15": true,
			"2025-10-14": true,
			"2025-10-10": true,
		},
	}
}

func TestNewHabitState(t *testing.T) {
	s := NewHabitState(sampleHabit(), today)

	assert.Equal(t, HabitState{
		Name:           "Read",
		Color:          "#40c463",
		CurrentStreak:  2,
		LongestStreak:  2,
		CompletionRate: 10,
		CompletedToday: true,
		Date:           "2025-10-15",
	}, s)
}

func TestPublish(t *testing.T) {
	client := &fakeClient{connected: true}
	p := NewWithClient(client, "home/habits", nil)

	require.NoError(t, p.Publish(sampleHabit(), today))
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	assert.Equal(t, "home/habits/h1/state", msg.topic)
	assert.Equal(t, byte(1), msg.qos)
	assert.True(t, msg.retained)

	var got HabitState
	require.NoError(t, json.Unmarshal(msg.payload, &got))
	assert.Equal(t, NewHabitState(sampleHabit(), today), got)

	p.Close()
	assert.True(t, client.disconnected)
}

func TestPublishErrors(t *testing.T) {
	client := &fakeClient{token: &fakeToken{err: errors.New("not authorised")}}
	p := NewWithClient(client, "habitgrid", nil)
	assert.ErrorContains(t, p.Publish(sampleHabit(), today), "not authorised")

	client.token = &fakeToken{timeout: true}
	assert.ErrorContains(t, p.Publish(sampleHabit(), today), "timed out")
}

func TestCloseSkipsDisconnectedClient(t *testing.T) {
	client := &fakeClient{}
	NewWithClient(client, "habitgrid", nil).Close()
	assert.False(t, client.disconnected)
}

func TestNewRequiresEnabledBroker(t *testing.T) {
	_, err := New(config.MQTTConfig{}, nil)
	assert.Error(t, err)

	_, err = New(config.MQTTConfig{Enabled: true}, nil)
	assert.ErrorContains(t, err, "broker")
}
