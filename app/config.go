package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Environment    string   `mapstructure:"ENVIRONMENT"`
	Version        string   `mapstructure:"VERSION"`
	TrustedOrigins []string `mapstructure:"TRUSTED_ORIGINS"`
	TLSCertFile    string   `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile     string   `mapstructure:"TLS_KEY_FILE"`

	DB       DBConfig       `mapstructure:",squash"`
	JWT      JWTConfig      `mapstructure:",squash"`
	Admin    AdminConfig    `mapstructure:",squash"`
	RabbitMQ RabbitMQConfig `mapstructure:",squash"`
}

type DBConfig struct {
	Host     string `mapstructure:"POSTGRES_HOST"`
	Port     string `mapstructure:"POSTGRES_PORT"`
	User     string `mapstructure:"POSTGRES_USER"`
	Password string `mapstructure:"POSTGRES_PASSWORD"`
	Name     string `mapstructure:"POSTGRES_DB"`
}

type JWTConfig struct {
	Secret   string        `mapstructure:"JWT_SECRET"`
	Issuer   string        `mapstructure:"JWT_ISSUER"`
	Audience string        `mapstructure:"JWT_AUDIENCE"`
	Expiry   time.Duration `mapstructure:"JWT_EXPIRY"`
}

// AdminConfig is the account created on first start when no admin exists.
type AdminConfig struct {
	Username        string `mapstructure:"ADMIN_USERNAME"`
	Email           string `mapstructure:"ADMIN_EMAIL"`
	Password        string `mapstructure:"ADMIN_PASSWORD"`
	SeedSampleBlogs bool   `mapstructure:"SEED_SAMPLE_BLOGS"`
}

// RabbitMQConfig leaves event publishing disabled when Host is empty.
type RabbitMQConfig struct {
	Host     string `mapstructure:"RABBITMQ_HOST"`
	Port     string `mapstructure:"RABBITMQ_PORT"`
	User     string `mapstructure:"RABBITMQ_USER"`
	Password string `mapstructure:"RABBITMQ_PASSWORD"`
}

var configDefaults = map[string]any{
	"PORT":              "8080",
	"ENVIRONMENT":       "development",
	"VERSION":           "1.0.0",
	"TRUSTED_ORIGINS":   "http://localhost:3000",
	"TLS_CERT_FILE":     "",
	"TLS_KEY_FILE":      "",
	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     "5432",
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "",
	"POSTGRES_DB":       "blogsite",
	"JWT_SECRET":        "",
	"JWT_ISSUER":        "BlogAPI",
	"JWT_AUDIENCE":      "BlogAPI",
	"JWT_EXPIRY":        "168h",
	"ADMIN_USERNAME":    "admin",
	"ADMIN_EMAIL":       "admin@blogsite.local",
	"ADMIN_PASSWORD":    "",
	"SEED_SAMPLE_BLOGS": false,
	"RABBITMQ_HOST":     "",
	"RABBITMQ_PORT":     "5672",
	"RABBITMQ_USER":     "guest",
	"RABBITMQ_PASSWORD": "guest",
}

// loadConfig reads the env file at path, if there is one, and lets
// environment variables override every key.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return &config, nil
}

func (c *Config) addr() string {
	return ":" + c.Port
}
