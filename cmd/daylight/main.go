package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/daylight/internal/config"
	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/server"
	"github.com/standardbeagle/daylight/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "daylight",
		Usage:                  "Blazing-fast syntax highlighting service",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			highlightCommand(),
			spansCommand(),
			stressCommand(),
			languagesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the highlight server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Listen address",
				EnvVars: []string{"DAYLIGHT_LISTEN"},
			},
			&cli.IntFlag{
				Name:    "worker-threads",
				Usage:   "Cap on the blocking worker pool",
				EnvVars: []string{"DAYLIGHT_WORKER_THREADS"},
			},
			&cli.Uint64Flag{
				Name:    "default-timeout-ms",
				Usage:   "Per-file timeout when the request sends 0",
				EnvVars: []string{"DAYLIGHT_DEFAULT_PER_FILE_TIMEOUT_MS"},
			},
			&cli.Uint64Flag{
				Name:    "max-timeout-ms",
				Usage:   "Largest per-file timeout a request may ask for",
				EnvVars: []string{"DAYLIGHT_MAX_PER_FILE_TIMEOUT_MS"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfigWithOverrides(c)
			if err != nil {
				return err
			}
			setupLogging(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg)
		},
	}
}

func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("listen"); v != "" {
		cfg.Listen = v
	}
	if v := c.Int("worker-threads"); v > 0 {
		cfg.Workers.Threads = v
	}
	if v := c.Uint64("default-timeout-ms"); v > 0 {
		cfg.Timeouts.DefaultPerFileMs = v
	}
	if v := c.Uint64("max-timeout-ms"); v > 0 {
		cfg.Timeouts.MaxPerFileMs = v
	}
	return cfg, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "List supported languages",
		Action: func(c *cli.Context) error {
			for _, name := range languages.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
