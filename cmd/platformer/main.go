// platformer is an endless side-scrolling platformer for the terminal. The
// world is generated chunk by chunk from a seed, so a seed always produces
// the same level.
//
// Usage:
//
//	platformer play              - Play in this terminal
//	platformer serve             - Start SSH server for remote play
//	platformer scores            - Show the best runs
//	platformer chunk <index>     - Print a generated chunk as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - World seed (default: from config)
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom platformer YAML
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//	--telemetry-dir <dir> - Write per-window stats as CSV
//	--cache-size <n>      - Chunk templates to cache (default: from config)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/chunkcache"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagConfig       string
	flagLogLevel     string
	flagLogFile      string
	flagTelemetryDir string
	flagCacheSize    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Chunk Runner - an endless platformer in your terminal",
	Long: `Chunk Runner is an endless side-scroller. The world streams in
chunks generated from a seed: run right, jump between platforms, shoot
enemies, collect gems and avoid spikes.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  chunk    - Inspect a generated chunk

Examples:
  platformer play
  platformer play --seed 42
  platformer serve --ssh :2222
  platformer scores --tui
  platformer chunk 3 --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagTelemetryDir, "telemetry-dir", "", "Directory for telemetry CSV (empty = off)")
	rootCmd.PersistentFlags().IntVar(&flagCacheSize, "cache-size", 0, "Chunk templates to cache (0 = use config, -1 = off)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(chunkCmd)
}

// app bundles what every command sets up from the global flags.
type app struct {
	cfg    config.PlatformerConfig
	logger *log.Logger
	cache  *chunkcache.Cache
	closer io.Closer
}

// setup loads the config, builds the logger and template cache, and wires
// them into the platformer package. fallback receives logs when --log-file
// is not set.
func setup(fallback io.Writer) (*app, error) {
	rt := &app{}

	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		rt.closer = f
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	rt.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			rt.Close()
			return nil, err
		}
		rt.logger.Warn("using default config", "err", err)
	}
	rt.cfg = cfg

	size := flagCacheSize
	if size == 0 {
		size = cfg.World.CacheSize
	}
	if size > 0 {
		rt.cache, err = chunkcache.New(size)
		if err != nil {
			rt.logger.Warn("chunk cache disabled", "err", err)
			rt.cache = nil
		}
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetLogger(rt.logger)
	if rt.cache != nil {
		platformer.SetTemplateCache(rt.cache)
	}
	return rt, nil
}

// seed resolves --seed against the config.
func (rt *app) seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return rt.cfg.World.Seed
}

// Close reports cache statistics and releases the cache and log file.
func (rt *app) Close() {
	if rt.cache != nil {
		rt.logger.Debug("chunk cache", "hits", rt.cache.Hits(), "misses", rt.cache.Misses())
		rt.cache.Close()
	}
	if rt.closer != nil {
		rt.closer.Close()
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
