package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("should fill defaults around required keys", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := writeConfig(t, "db:\n  user: dispatch\n  name: dispatch\n")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "8082", cfg.HTTP.Port)
		assert.Equal(t, "pgx", cfg.DB.Driver)
		assert.Equal(t, "disable", cfg.DB.SslMode)
		assert.Equal(t, "* * * * * *", cfg.Jobs.AssignSchedule)
		assert.Equal(t, 3, cfg.Dispatch.MaxAttempts)
		assert.Empty(t, cfg.MQTT.Broker)
		assert.Equal(t, 5*time.Second, cfg.MQTT.Timeout)
	})

	t.Run("should let environment override file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := writeConfig(t, "http:\n  port: \"9000\"\ndb:\n  user: file\n  name: dispatch\n")
		t.Setenv("DB_USER", "env")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("MQTT_CLIENT_ID", "node-1")
		t.Setenv("DISPATCH_MAX_ATTEMPTS", "5")
		t.Setenv("MQTT_TIMEOUT", "250ms")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.HTTP.Port)
		assert.Equal(t, "env", cfg.DB.User)
		assert.Equal(t, "require", cfg.DB.SslMode)
		assert.Equal(t, "node-1", cfg.MQTT.ClientID)
		assert.Equal(t, 5, cfg.Dispatch.MaxAttempts)
		assert.Equal(t, 250*time.Millisecond, cfg.MQTT.Timeout)
	})

	t.Run("should read .env from working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(".env", []byte("DB_USER=dotenv\nDB_NAME=fromfile\n"), 0o600))
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")
		require.NoError(t, os.Unsetenv("DB_USER"))
		require.NoError(t, os.Unsetenv("DB_NAME"))

		cfg, err := LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "dotenv", cfg.DB.User)
		assert.Equal(t, "fromfile", cfg.DB.Name)
	})

	t.Run("should report every invalid key", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := writeConfig(t, "db:\n  driver: mysql\njobs:\n  move_schedule: every tick\nmqtt:\n  qos: 3\n  timeout: -1s\n")

		_, err := LoadConfig(path)

		require.Error(t, err)
		for _, key := range []string{"db.user", "db.name", "db.driver", "jobs.move_schedule", "mqtt.qos", "mqtt.timeout"} {
			assert.Contains(t, err.Error(), key)
		}
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})
}

func TestDBConfig_DSN(t *testing.T) {
	dsn := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SslMode: "disable"}.DSN()

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", dsn)
}

func TestPublisherConfig(t *testing.T) {
	got := publisherConfig(MQTTConfig{
		Broker:      "tcp://broker:1883",
		ClientID:    "node-1",
		TopicPrefix: "fleet",
		QoS:         1,
		Timeout:     2 * time.Second,
	})

	assert.Equal(t, "tcp://broker:1883", got.Broker)
	assert.Equal(t, "node-1", got.ClientID)
	assert.Equal(t, "fleet", got.TopicPrefix)
	assert.Equal(t, byte(1), got.QoS)
	assert.Equal(t, 2*time.Second, got.Timeout)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.sslmode", envKey("DB_SSLMODE"))
	assert.Equal(t, "jobs.assign_schedule", envKey("JOBS_ASSIGN_SCHEDULE"))
	assert.Empty(t, envKey("PATH"))
	assert.Empty(t, envKey("HOME"))
}

func TestLockedSource_IntN(t *testing.T) {
	src := newLockedSource()
	for range 100 {
		v := src.IntN(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}
