// Package config loads server settings from a KDL file, environment
// variables, and flag overrides, in that order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "daylight.kdl"

type Config struct {
	Listen   string
	LogLevel string
	Workers  Workers
	Timeouts Timeouts

	// Path is where the configuration was loaded from (or would have been);
	// the hot-reload watcher follows it.
	Path string
}

type Workers struct {
	// Threads caps the blocking worker pool.
	Threads int
}

type Timeouts struct {
	// DefaultPerFileMs applies when a request carries timeout_ms == 0.
	DefaultPerFileMs uint64
	// MaxPerFileMs rejects requests asking for more.
	MaxPerFileMs uint64
}

func defaults() *Config {
	return &Config{
		Listen:   "127.0.0.1:8080",
		LogLevel: "info",
		Workers:  Workers{Threads: 512},
		Timeouts: Timeouts{
			DefaultPerFileMs: 30_000,
			MaxPerFileMs:     60_000,
		},
	}
}

// Load reads path (when it exists) and applies DAYLIGHT_* environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = DefaultPath
	}
	cfg.Path = path
	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file; defaults plus environment.
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := parseKDL(cfg, string(content)); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Workers.Threads <= 0 {
		return fmt.Errorf("worker threads must be positive, got %d", c.Workers.Threads)
	}
	if c.Timeouts.DefaultPerFileMs == 0 {
		return fmt.Errorf("default per-file timeout must be positive")
	}
	if c.Timeouts.DefaultPerFileMs > c.Timeouts.MaxPerFileMs {
		return fmt.Errorf("default per-file timeout %dms exceeds maximum %dms",
			c.Timeouts.DefaultPerFileMs, c.Timeouts.MaxPerFileMs)
	}
	return nil
}

func parseKDL(cfg *Config, content string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return err
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "listen":
			if s, ok := firstStringArg(n); ok {
				cfg.Listen = s
			}
		case "log_level":
			if s, ok := firstStringArg(n); ok {
				cfg.LogLevel = s
			}
		case "workers":
			for _, cn := range n.Children {
				if nodeName(cn) == "threads" {
					if v, ok := firstIntArg(cn); ok {
						cfg.Workers.Threads = v
					}
				}
			}
		case "timeouts":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "default_per_file_ms":
					if v, ok := firstIntArg(cn); ok && v > 0 {
						cfg.Timeouts.DefaultPerFileMs = uint64(v)
					}
				case "max_per_file_ms":
					if v, ok := firstIntArg(cn); ok && v > 0 {
						cfg.Timeouts.MaxPerFileMs = uint64(v)
					}
				}
			}
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DAYLIGHT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("DAYLIGHT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := envUint("DAYLIGHT_WORKER_THREADS"); ok {
		cfg.Workers.Threads = int(v)
	}
	if v, ok := envUint("DAYLIGHT_DEFAULT_PER_FILE_TIMEOUT_MS"); ok {
		cfg.Timeouts.DefaultPerFileMs = v
	}
	if v, ok := envUint("DAYLIGHT_MAX_PER_FILE_TIMEOUT_MS"); ok {
		cfg.Timeouts.MaxPerFileMs = v
	}
}

func envUint(key string) (uint64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
