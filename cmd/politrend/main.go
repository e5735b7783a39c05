package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/politrend/pkg/config"
	"github.com/umputun/politrend/pkg/notify"
	"github.com/umputun/politrend/pkg/repository"
	"github.com/umputun/politrend/pkg/scheduler"
	"github.com/umputun/politrend/pkg/scraper"
	"github.com/umputun/politrend/pkg/service"
	"github.com/umputun/politrend/pkg/tracker"
	"github.com/umputun/politrend/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"politrend.yml" description:"configuration file"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB      string `long:"db" env:"DB" description:"database dsn, overrides config"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"env file with secrets, ignored if missing"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	// reinitialize logger with secrets from config
	setupLog(opts.Debug, secrets(cfg)...)
	log.Printf("[INFO] starting politrend version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	sources, err := scraper.NewSources(sourceConfigs(cfg), cfg.Scraper.UserAgent, cfg.Scraper.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create sources: %w", err)
	}

	trk, err := tracker.New(ctx, tracker.Params{
		Scraper:  scraper.New(sources, cfg.Scraper.Timeout),
		Store:    service.NewStore(repos),
		Notifier: makeNotifier(cfg),
		Settings: cfg.AlertSettings(),
		Source:   sourceTag(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}

	sched, err := scheduler.New(trk, scheduler.Config{
		Spec:         cfg.Schedule.Cron,
		Timezone:     cfg.Schedule.Timezone,
		RunOnStart:   !cfg.Schedule.SkipInitial,
		CycleTimeout: cfg.Schedule.CycleTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, trk, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeNotifier returns the configured transport, nil when alerts are only recorded
func makeNotifier(cfg *config.Config) tracker.Notifier {
	switch cfg.Notify.Provider {
	case "smtp":
		log.Printf("[INFO] alerts delivered by email via %s:%d", cfg.Notify.SMTP.Host, cfg.Notify.SMTP.Port)
		return notify.NewEmail(notify.EmailConfig{
			Host:     cfg.Notify.SMTP.Host,
			Port:     cfg.Notify.SMTP.Port,
			Username: cfg.Notify.SMTP.Username,
			Password: cfg.Notify.SMTP.Password,
			From:     cfg.Notify.SMTP.From,
		})
	case "telegram":
		log.Printf("[INFO] alerts delivered by telegram bot")
		return notify.NewTelegram(notify.TelegramConfig{
			Token:   cfg.Notify.Telegram.Token,
			Timeout: cfg.Notify.Telegram.Timeout,
		})
	default:
		log.Printf("[INFO] no notification provider, alerts are recorded only")
		return nil
	}
}

func sourceConfigs(cfg *config.Config) []scraper.SourceConfig {
	res := make([]scraper.SourceConfig, 0, len(cfg.Scraper.Sources))
	for _, s := range cfg.Scraper.Sources {
		res = append(res, scraper.SourceConfig{
			Name:          s.Name,
			Type:          s.Type,
			URL:           s.URL,
			ItemSelector:  s.ItemSelector,
			TopicSelector: s.TopicSelector,
			RankSelector:  s.RankSelector,
			MaxItems:      s.MaxItems,
		})
	}
	return res
}

// sourceTag joins source names, used as provenance for new entities
func sourceTag(cfg *config.Config) string {
	names := make([]string, 0, len(cfg.Scraper.Sources))
	for _, s := range cfg.Scraper.Sources {
		names = append(names, s.Name)
	}
	return strings.Join(names, ",")
}

// secrets collects sensitive config values to be masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	if cfg.Notify.SMTP.Password != "" {
		res = append(res, cfg.Notify.SMTP.Password)
	}
	if cfg.Notify.Telegram.Token != "" {
		res = append(res, cfg.Notify.Telegram.Token)
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

