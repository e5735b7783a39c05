package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/politrend/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:politrend.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Scraper ScraperConfig `yaml:"scraper" json:"scraper" jsonschema:"description=Trend sources configuration"`

	Schedule struct {
		Cron         string        `yaml:"cron" json:"cron" jsonschema:"default=@every 15m,description=Cron spec or descriptor for update cycles"`
		Timezone     string        `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=Timezone for cron specs"`
		SkipInitial  bool          `yaml:"skip_initial" json:"skip_initial" jsonschema:"default=false,description=Do not run an update right after start"`
		CycleTimeout time.Duration `yaml:"cycle_timeout" json:"cycle_timeout" jsonschema:"default=5m,description=Upper bound for a single update cycle"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Notify NotifyConfig `yaml:"notify" json:"notify" jsonschema:"description=Alert delivery configuration"`

	Alerts AlertsConfig `yaml:"alerts" json:"alerts" jsonschema:"description=Initial alert settings, used until changed via API"`
}

// ScraperConfig holds trend source settings
type ScraperConfig struct {
	Timeout   time.Duration  `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-source fetch timeout"`
	UserAgent string         `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; politrend/1.0),description=User agent for HTTP requests"`
	Sources   []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Trend sources, merged by best rank when more than one"`
}

// SourceConfig describes one trend source
type SourceConfig struct {
	Name          string `yaml:"name" json:"name" jsonschema:"required,description=Source name used as provenance tag"`
	Type          string `yaml:"type" json:"type" jsonschema:"enum=html,enum=rss,default=html,description=Source type"`
	URL           string `yaml:"url" json:"url" jsonschema:"required,description=Page or feed URL"`
	ItemSelector  string `yaml:"item_selector" json:"item_selector" jsonschema:"description=CSS selector for trend items (html only)"`
	TopicSelector string `yaml:"topic_selector" json:"topic_selector" jsonschema:"description=CSS selector for topic text inside an item (html only)"`
	RankSelector  string `yaml:"rank_selector" json:"rank_selector" jsonschema:"description=CSS selector for rank text inside an item (html only)"`
	MaxItems      int    `yaml:"max_items" json:"max_items" jsonschema:"minimum=0,description=Maximum number of topics to take from the source"`
}

// NotifyConfig holds delivery transport settings
type NotifyConfig struct {
	Provider string `yaml:"provider" json:"provider" jsonschema:"enum=,enum=smtp,enum=telegram,description=Delivery transport, alerts are only recorded when empty"`
	SMTP     struct {
		Host     string `yaml:"host" json:"host" jsonschema:"description=SMTP server host"`
		Port     int    `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP server port"`
		Username string `yaml:"username" json:"username" jsonschema:"description=SMTP username"`
		Password string `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
		From     string `yaml:"from" json:"from" jsonschema:"description=Sender address"`
	} `yaml:"smtp" json:"smtp" jsonschema:"description=SMTP settings"`
	Telegram struct {
		Token   string        `yaml:"token" json:"token" jsonschema:"description=Bot token (can use environment variable)"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Telegram API timeout"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot settings"`
}

// AlertsConfig holds initial alert settings
type AlertsConfig struct {
	Recipient  string   `yaml:"recipient" json:"recipient" jsonschema:"description=Email address or telegram chat id"`
	MinRank    int      `yaml:"min_rank" json:"min_rank" jsonschema:"default=10,minimum=1,description=Alert only for trends ranked at or above this position"`
	Categories []string `yaml:"categories" json:"categories" jsonschema:"description=Enabled categories, all when empty"`
	Frequency  string   `yaml:"frequency" json:"frequency" jsonschema:"enum=instant,enum=batch,default=instant,description=One message per trend or per update cycle"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://" + cfg.Server.Listen
		if strings.HasPrefix(cfg.Server.Listen, ":") {
			cfg.Server.BaseURL = "http://localhost" + cfg.Server.Listen
		}
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:politrend.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// scraper
	if cfg.Scraper.Timeout == 0 {
		cfg.Scraper.Timeout = 15 * time.Second
	}
	if cfg.Scraper.UserAgent == "" {
		cfg.Scraper.UserAgent = "Mozilla/5.0 (compatible; politrend/1.0)"
	}
	if len(cfg.Scraper.Sources) == 0 {
		cfg.Scraper.Sources = []SourceConfig{{
			Name:          "trends24",
			Type:          "html",
			URL:           "https://trends24.in/united-states/",
			ItemSelector:  "ol.trend-card__list li",
			TopicSelector: "a.trend-link",
			MaxItems:      50,
		}}
	}
	for i := range cfg.Scraper.Sources {
		if cfg.Scraper.Sources[i].Type == "" {
			cfg.Scraper.Sources[i].Type = "html"
		}
	}

	// schedule
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "@every 15m"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "UTC"
	}
	if cfg.Schedule.CycleTimeout == 0 {
		cfg.Schedule.CycleTimeout = 5 * time.Minute
	}

	// notify
	if cfg.Notify.SMTP.Port == 0 {
		cfg.Notify.SMTP.Port = 587
	}
	if cfg.Notify.Telegram.Timeout == 0 {
		cfg.Notify.Telegram.Timeout = 30 * time.Second
	}

	// alerts
	if cfg.Alerts.MinRank == 0 {
		cfg.Alerts.MinRank = 10
	}
	if cfg.Alerts.Frequency == "" {
		cfg.Alerts.Frequency = string(domain.FrequencyInstant)
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Scraper.Timeout < time.Second {
		return fmt.Errorf("scraper timeout must be at least 1 second")
	}

	for i, src := range cfg.Scraper.Sources {
		if src.Name == "" {
			return fmt.Errorf("scraper.sources[%d].name is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("scraper.sources[%d].url is required", i)
		}
		if src.Type != "html" && src.Type != "rss" {
			return fmt.Errorf("scraper.sources[%d].type must be html or rss, got %q", i, src.Type)
		}
		if src.MaxItems < 0 {
			return fmt.Errorf("scraper.sources[%d].max_items must be non-negative", i)
		}
	}

	switch cfg.Notify.Provider {
	case "":
	case "smtp":
		if cfg.Notify.SMTP.Host == "" || cfg.Notify.SMTP.From == "" {
			return fmt.Errorf("notify.smtp.host and notify.smtp.from are required for smtp provider")
		}
	case "telegram":
		if cfg.Notify.Telegram.Token == "" {
			return fmt.Errorf("notify.telegram.token is required for telegram provider")
		}
	default:
		return fmt.Errorf("notify.provider must be smtp or telegram, got %q", cfg.Notify.Provider)
	}

	if err := cfg.AlertSettings().Validate(); err != nil {
		return fmt.Errorf("alerts: %w", err)
	}
	return nil
}

// AlertSettings returns initial alert settings, all categories enabled when none configured
func (c *Config) AlertSettings() domain.Settings {
	s := domain.Settings{
		Recipient: strings.TrimSpace(c.Alerts.Recipient),
		MinRank:   c.Alerts.MinRank,
		Frequency: domain.Frequency(c.Alerts.Frequency),
	}
	if len(c.Alerts.Categories) == 0 {
		s.EnabledCategories = domain.AllCategories()
		return s
	}
	for _, cat := range c.Alerts.Categories {
		s.EnabledCategories = append(s.EnabledCategories, domain.Category(cat))
	}
	return s
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL used in feed links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
