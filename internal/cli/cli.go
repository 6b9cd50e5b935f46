// Package cli implements the reaction-layout command-line interface:
// computing a layout from a JSON model, viewing the compartment tree as
// a DOT graph, rendering SVG, and serving the HTTP API.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/reactome-tools/reaction-layout/internal/config"
	"github.com/reactome-tools/reaction-layout/pkg/cache"
)

const appName = "reaction-layout"

// Log levels re-exported for callers outside this package.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared across commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a CLI with a default logger and configuration.
func New(w io.Writer, level log.Level, cfg config.Config) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) { c.Logger.SetLevel(level) }

// newCache builds the cache backend named by c.Config.Cache.Backend.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	switch c.Config.Cache.Backend {
	case "", "null":
		return cache.NewNullCache(), nil
	case "file":
		dir := c.Config.Cache.Dir
		if dir == "" {
			dir = "." + appName + "-cache"
		}
		return cache.NewFileCache(dir)
	case "lru":
		return cache.NewLRUCache(c.Config.Cache.LRUSize)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: c.Config.Cache.RedisAddr})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Config.Cache.Backend)
	}
}

func (c *CLI) treeTTL() time.Duration {
	return time.Duration(c.Config.Cache.TreeTTLSec) * time.Second
}
