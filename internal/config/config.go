package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Display   DisplayConfig   `yaml:"display"`
	Seed      SeedConfig      `yaml:"seed"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level string onto the wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"       validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"            validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"        validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"        validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"fitnessbooking"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"         validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"              validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"               validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"              validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	Secret     string        `yaml:"secret"      env:"AUTH_SECRET"      validate:"required"`
	Issuer     string        `yaml:"issuer"      env:"AUTH_ISSUER"      env-default:"fitness-booking" validate:"required"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"AUTH_TOKEN_TTL"   env-default:"30m"             validate:"gt=0"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"              validate:"min=4,max=31"`
}

type SchedulerConfig struct {
	Interval       time.Duration `yaml:"interval"        env:"SCHEDULER_INTERVAL"        env-default:"1m"  validate:"required,gt=0"`
	ReminderWindow time.Duration `yaml:"reminder_window" env:"SCHEDULER_REMINDER_WINDOW" env-default:"1h"  validate:"required,gt=0"`
}

type DisplayConfig struct {
	Timezone string `yaml:"timezone" env:"DISPLAY_TIMEZONE" env-default:"Asia/Kolkata"`
}

type SeedConfig struct {
	Enabled bool `yaml:"enabled" env:"SEED_ENABLED" env-default:"false"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
