package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/pkg/buildinfo"
	"github.com/mdimension/mdim/pkg/cache"
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/pipeline"
	"github.com/mdimension/mdim/pkg/rotation"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mdim"

	// defaultDimension is used when no --dimension flag is given.
	defaultDimension = 4
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mdim",
		Short:        "mdim visualizes N-dimensional geometry as wireframes",
		Long:         `mdim is a CLI tool for generating, transforming, and visualizing N-dimensional geometric objects: polytopes, root systems, tori, and fractals projected down to flatland.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.planesCommand())
	root.AddCommand(c.objectsCommand())
	root.AddCommand(c.sceneCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mdim/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Parsing Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseRotations parses repeated --rotate flags of the form "PLANE=ANGLE"
// (e.g. "XW=0.7") into rotation angles, preserving order.
func parseRotations(specs []string) ([]rotation.Angle, error) {
	angles := make([]rotation.Angle, 0, len(specs))
	for _, spec := range specs {
		name, raw, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"invalid rotation %q (expected PLANE=ANGLE, e.g. XW=0.7)", spec)
		}
		p, err := rotation.ParsePlane(name)
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"invalid rotation angle %q in %q", raw, spec)
		}
		angles = append(angles, rotation.Angle{Plane: p.Name, Value: value})
	}
	return angles, nil
}
