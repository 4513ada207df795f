package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cadencehq/cadence/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Cron       CronConfig       `validate:"required"`
	Webhook    WebhookConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type PostgresConfig struct {
	Host                   string `validate:"required"`
	Port                   int    `validate:"required"`
	User                   string `validate:"required"`
	Password               string
	DBName                 string `validate:"required"`
	SSLMode                string
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeMinutes int
	AutoMigrate            bool
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// CronConfig configures the externally triggered batch endpoints. The secret
// is a static bearer credential compared against the trigger's Authorization
// header; batch size bounds one invocation's work so the job stays inside the
// trigger's time budget.
type CronConfig struct {
	Secret            string `validate:"required"`
	BatchSize         int
	LateIssueDays     int
	PaymentDueWindow  int
	ReminderBatchSize int
}

type WebhookConfig struct {
	Enabled bool
	Topic   string

	// Consumer retry policy
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxElapsedTime  time.Duration
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cadence")

	v.SetEnvPrefix("CADENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.maxopenconns", 10)
	v.SetDefault("postgres.maxidleconns", 5)
	v.SetDefault("postgres.connmaxlifetimeminutes", 30)
	v.SetDefault("cron.batchsize", 50)
	v.SetDefault("cron.lateissuedays", 4)
	v.SetDefault("cron.paymentduewindow", 3)
	v.SetDefault("cron.reminderbatchsize", 100)
	v.SetDefault("webhook.enabled", true)
	v.SetDefault("webhook.topic", "notifications")
	v.SetDefault("webhook.maxretries", 3)
	v.SetDefault("webhook.initialinterval", "1s")
	v.SetDefault("webhook.maxinterval", "10s")
	v.SetDefault("webhook.multiplier", 2.0)
	v.SetDefault("webhook.maxelapsedtime", "2m")
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}

// GetDSN returns the postgres connection string
func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
