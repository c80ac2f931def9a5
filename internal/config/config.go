package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"home_relay/internal/repository/db"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Mail     MailConfig     `mapstructure:"mail"`
	Report   ReportConfig   `mapstructure:"report"`
	MQTT     MQTTConfig     `mapstructure:"mqtt"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	DSN    string `mapstructure:"dsn"`
}

// MailConfig is the outbound SMTP relay. Sender and Password have no default.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Sender   string `mapstructure:"sender"`
	Password string `mapstructure:"password"`
}

type ReportConfig struct {
	// Dir is where report jobs create their working directories.
	Dir string `mapstructure:"dir"`
	// JobTimeout bounds the queries and the send of one job; 0 disables it.
	JobTimeout time.Duration     `mapstructure:"job_timeout"`
	Daily      DailyReportConfig `mapstructure:"daily"`
}

type DailyReportConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Recipient string        `mapstructure:"recipient"`
	At        string        `mapstructure:"at"` // HH:MM, UTC
	Tick      time.Duration `mapstructure:"tick"`
}

// MQTTConfig enables the sensor ingest subscriber when Broker is set.
type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Topic    string `mapstructure:"topic"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// RedisConfig enables the relay state cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

const defaultSQLitePath = "app.db"

// DailyAtLayout is the layout of report.daily.at.
const DailyAtLayout = "15:04"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("database.driver", string(db.SQLite))
	v.SetDefault("database.dsn", "")

	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.sender", "")
	v.SetDefault("mail.password", "")

	v.SetDefault("report.dir", "reports")
	v.SetDefault("report.job_timeout", "0s")
	v.SetDefault("report.daily.enabled", false)
	v.SetDefault("report.daily.recipient", "")
	v.SetDefault("report.daily.at", "07:00")
	v.SetDefault("report.daily.tick", "1m")

	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.client_id", "home-relay")
	v.SetDefault("mqtt.topic", "home/env")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "30s")
}

// bindLegacyEnv keeps the variable names of earlier deployments working.
func bindLegacyEnv(v *viper.Viper) error {
	for key, names := range map[string][]string{
		"server.port":   {"SERVER_PORT", "PORT"},
		"database.dsn":  {"DATABASE_DSN", "DATABASE_URL"},
		"mail.sender":   {"MAIL_SENDER", "GMAIL_USER"},
		"mail.password": {"MAIL_PASSWORD", "GMAIL_APP_PWD"},
	} {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

// Load reads <path>/config.yml if present, then environment variables
// (report.daily.at -> REPORT_DAILY_AT), on top of defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings and fills derived defaults.
func (c *Config) Validate() error {
	var errs []error

	dialect, err := db.ParseDialect(c.Database.Driver)
	if err != nil {
		errs = append(errs, err)
	}
	if c.Database.DSN == "" {
		if dialect == db.Postgres {
			errs = append(errs, errors.New("database.dsn is required for postgres"))
		} else {
			c.Database.DSN = defaultSQLitePath
		}
	}

	if strings.TrimSpace(c.Mail.Sender) == "" {
		errs = append(errs, errors.New("mail.sender is required"))
	}
	if c.Mail.Password == "" {
		errs = append(errs, errors.New("mail.password is required"))
	}
	if c.Mail.Port <= 0 {
		errs = append(errs, fmt.Errorf("mail.port must be positive, got %d", c.Mail.Port))
	}

	if c.Report.JobTimeout < 0 {
		errs = append(errs, errors.New("report.job_timeout must not be negative"))
	}
	if c.Report.Daily.Enabled {
		if strings.TrimSpace(c.Report.Daily.Recipient) == "" {
			errs = append(errs, errors.New("report.daily.recipient is required when the daily report is enabled"))
		}
		if _, err := time.Parse(DailyAtLayout, c.Report.Daily.At); err != nil {
			errs = append(errs, fmt.Errorf("report.daily.at %q: want HH:MM", c.Report.Daily.At))
		}
		if c.Report.Daily.Tick <= 0 {
			errs = append(errs, errors.New("report.daily.tick must be positive"))
		}
	}

	return errors.Join(errs...)
}

// Dialect returns the parsed database driver. Call after Validate.
func (c *Config) Dialect() db.Dialect {
	d, _ := db.ParseDialect(c.Database.Driver)
	return d
}
