package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type ServerConfig struct {
	Port           int      `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	// Driver is one of memory, postgres, mongo.
	Driver        string `yaml:"driver"`
	DSN           string `yaml:"url"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type KvkConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	NotifyEmail  string `yaml:"notify_email"`
}

type DashboardConfig struct {
	Location string `yaml:"location"`
	SeedDemo bool   `yaml:"seed_demo"`
}

type MetricsConfig struct {
	Enabled *bool `yaml:"enabled"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Kvk       KvkConfig       `yaml:"kvk"`
	Email     EmailConfig     `yaml:"email"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// Load reads the YAML file at path, applies environment overrides and fills defaults.
// A missing file is not an error; everything can come from the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[config] %s not found, using environment and defaults", path)
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", path, err)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads .env, then the file named by CONFIG_PATH (default config/config.yaml).
// It panics on an unusable configuration.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] warning: .env: %v", err)
	}
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	cfg, err := Load(path)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

func setString(dst *string, keys ...string) {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
			return
		}
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Database.MongoURI, "MONGO_URI")
	setString(&c.Database.MongoDatabase, "MONGO_DATABASE")
	setString(&c.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&c.Kvk.APIKey, "KVK_API_KEY", "NEXT_PUBLIC_KVK_API_KEY")
	setString(&c.Kvk.BaseURL, "KVK_BASE_URL")
	setString(&c.Dashboard.Location, "TZ_LOCATION")
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "memory"
	}
	if c.Database.MongoDatabase == "" {
		c.Database.MongoDatabase = "affiliatehub"
	}
	if c.Kvk.BaseURL == "" {
		c.Kvk.BaseURL = "https://api.kvk.nl"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Dashboard.Location == "" {
		c.Dashboard.Location = "Europe/Amsterdam"
	}
	if c.Metrics.Enabled == nil {
		on := true
		c.Metrics.Enabled = &on
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "memory":
	case "postgres":
		if c.Database.DSN == "" {
			return errors.New("database.url is required for the postgres driver")
		}
	case "mongo":
		if c.Database.MongoURI == "" {
			return errors.New("database.mongo_uri is required for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if _, err := time.LoadLocation(c.Dashboard.Location); err != nil {
		return fmt.Errorf("dashboard.location: %w", err)
	}
	return nil
}

// Location returns the dashboard time zone. Validate has already checked it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Dashboard.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

// NotificationsEnabled reports whether new leads are mailed to the sales inbox.
func (c *Config) NotificationsEnabled() bool {
	return c.Email.SMTPHost != "" && c.Email.NotifyEmail != ""
}
