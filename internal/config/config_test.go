package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.GetStorage())
	assert.Equal(t, "habits.db", cfg.GetDatabase())
	assert.Equal(t, "habits.json", cfg.GetDataFile())
	assert.Equal(t, "#40c463", cfg.GetDefaultColor())
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.Equal(t, "habitgrid", cfg.MQTT.GetTopicPrefix())
	assert.Equal(t, "habitgrid", cfg.MQTT.GetClientID())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	in := &Config{
		Storage:  StorageFile,
		DataFile: "/tmp/h.json",
		Selected: "abc",
		MQTT: MQTTConfig{
			Enabled:     true,
			Broker:      "localhost:1883",
			TopicPrefix: "home/habits",
		},
	}

	require.NoError(t, Save(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, "home/habits", out.MQTT.GetTopicPrefix())
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage: sqlite
database: data/habits.db
default_color: "#216e39"
log_level: debug
mqtt:
  enabled: true
  broker: broker.local:1883
  client_id: laptop
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/habits.db", cfg.GetDatabase())
	assert.Equal(t, "#216e39", cfg.GetDefaultColor())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, "laptop", cfg.MQTT.GetClientID())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "storage: [",
		"bad storage":    "storage: redis",
		"mqtt no broker": "mqtt:\n  enabled: true\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
