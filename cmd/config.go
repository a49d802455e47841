package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

// Config is the complete service configuration. See LoadConfig for the sources.
type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	DB       DBConfig       `koanf:"db"`
	Log      LogConfig      `koanf:"log"`
	Jobs     JobsConfig     `koanf:"jobs"`
	Dispatch DispatchConfig `koanf:"dispatch"`
	MQTT     MQTTConfig     `koanf:"mqtt"`
}

// HTTPConfig configures the API listener.
type HTTPConfig struct {
	Port string `koanf:"port"`
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SslMode  string `koanf:"sslmode"`
	// Driver is the database/sql driver gorm opens: "pgx" or "postgres" (lib/pq).
	Driver string `koanf:"driver"`
}

// LogConfig sets the slog level: debug, info, warn or error.
type LogConfig struct {
	Level string `koanf:"level"`
}

// JobsConfig holds six-field cron specs (with seconds) for the background jobs.
type JobsConfig struct {
	AssignSchedule string `koanf:"assign_schedule"`
	MoveSchedule   string `koanf:"move_schedule"`
}

// DispatchConfig tunes the assignment handler.
type DispatchConfig struct {
	MaxAttempts int `koanf:"max_attempts"`
}

// MQTTConfig enables event publishing when Broker is set.
type MQTTConfig struct {
	Broker      string `koanf:"broker"`
	ClientID    string `koanf:"client_id"`
	TopicPrefix string `koanf:"topic_prefix"`
	QoS         int    `koanf:"qos"`
	// Timeout bounds both the broker connect and each publish acknowledgement.
	Timeout time.Duration `koanf:"timeout"`
}

var envSections = []string{"HTTP_", "DB_", "LOG_", "JOBS_", "DISPATCH_", "MQTT_"}

// LoadConfig reads, in order of increasing precedence: built-in defaults, the YAML
// file at path (skipped when path is empty), a .env file in the working directory
// and the process environment. Environment keys map to config keys by lowercasing
// and turning the first underscore into a dot, so DB_SSLMODE sets db.sslmode and
// MQTT_CLIENT_ID sets mqtt.client_id.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(name string) string {
	for _, section := range envSections {
		if strings.HasPrefix(name, section) {
			return strings.Replace(strings.ToLower(name), "_", ".", 1)
		}
	}
	return ""
}

// SetDefaults fills every optional key left empty. Required keys (db.user, db.name)
// have no default.
func (c *Config) SetDefaults() {
	if c.HTTP.Port == "" {
		c.HTTP.Port = "8082"
	}
	if c.DB.Host == "" {
		c.DB.Host = "localhost"
	}
	if c.DB.Port == "" {
		c.DB.Port = "5432"
	}
	if c.DB.SslMode == "" {
		c.DB.SslMode = "disable"
	}
	if c.DB.Driver == "" {
		c.DB.Driver = "pgx"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Jobs.AssignSchedule == "" {
		c.Jobs.AssignSchedule = "* * * * * *"
	}
	if c.Jobs.MoveSchedule == "" {
		c.Jobs.MoveSchedule = "* * * * * *"
	}
	if c.Dispatch.MaxAttempts == 0 {
		c.Dispatch.MaxAttempts = 3
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = "courier-dispatch"
	}
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = "dispatch"
	}
	if c.MQTT.Timeout == 0 {
		c.MQTT.Timeout = 5 * time.Second
	}
}

// Validate reports every invalid key at once, joined with errors.Join.
func (c Config) Validate() error {
	var problems []error

	if c.DB.User == "" {
		problems = append(problems, errors.New("db.user is required"))
	}
	if c.DB.Name == "" {
		problems = append(problems, errors.New("db.name is required"))
	}
	if c.DB.Driver != "pgx" && c.DB.Driver != "postgres" {
		problems = append(problems, fmt.Errorf("db.driver must be pgx or postgres, got %q", c.DB.Driver))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for key, spec := range map[string]string{
		"jobs.assign_schedule": c.Jobs.AssignSchedule,
		"jobs.move_schedule":   c.Jobs.MoveSchedule,
	} {
		if _, err := parser.Parse(spec); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", key, err))
		}
	}

	if c.Dispatch.MaxAttempts < 1 {
		problems = append(problems, errors.New("dispatch.max_attempts must be positive"))
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		problems = append(problems, fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.MQTT.QoS))
	}
	if c.MQTT.Timeout < 0 {
		problems = append(problems, fmt.Errorf("mqtt.timeout must be positive, got %s", c.MQTT.Timeout))
	}

	return errors.Join(problems...)
}

// DSN is the libpq keyword/value connection string understood by both drivers.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}
