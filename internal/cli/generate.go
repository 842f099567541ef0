package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/pkg/object"
	"github.com/mdimension/mdim/pkg/pipeline"
)

// generateCommand creates the generate command for building and rendering
// geometries.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		rotateStr  []string
	)
	opts := pipeline.Options{Dimension: defaultDimension}

	cmd := &cobra.Command{
		Use:   "generate [object]",
		Short: "Generate a geometry and render it to files",
		Long: `Generate a geometry and render it to files.

The generate command builds the vertex and edge structure for an object
family, applies any requested rotations, and renders the projection to
JSON, SVG, DOT, or PNG.

Results are cached locally for faster subsequent runs.

Run 'mdim objects' to list the available object families.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ObjectType = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			angles, err := parseRotations(rotateStr)
			if err != nil {
				return err
			}
			opts.Transform.Rotations = angles
			return c.runGenerate(withLogger(cmd.Context(), c.Logger), opts, output, noCache)
		},
	}

	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return objectTypeNames(), cobra.ShellCompDirectiveNoFileComp
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Generate flags
	cmd.Flags().IntVarP(&opts.Dimension, "dimension", "d", defaultDimension, "ambient dimension")
	cmd.Flags().Float64Var(&opts.Config.Scale, "scale", 0, "uniform scale applied during generation")
	cmd.Flags().IntVar(&opts.Config.Resolution, "resolution", 0, "tessellation resolution (torus families)")
	cmd.Flags().StringVar(&opts.Config.RootType, "root-type", "", "root system family: A (default), D, E8")
	cmd.Flags().Float64Var(&opts.Config.Power, "power", 0, "fractal power exponent")
	cmd.Flags().IntVar(&opts.Config.Iterations, "iterations", 0, "fractal iteration count")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().StringArrayVar(&rotateStr, "rotate", nil, "plane rotation PLANE=ANGLE (repeatable, e.g. --rotate XW=0.7)")
	cmd.Flags().Float64Var(&opts.Distance, "distance", 0, "projection distance")
	cmd.Flags().BoolVar(&opts.FacesVisible, "faces", false, "detect and draw face polygons")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "canvas size in pixels")

	return cmd
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s...", opts.ObjectType))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Pipeline finished: %d vertices, %d edges",
		result.Stats.VertexCount, result.Stats.EdgeCount))

	printSuccess("Generated %s (%dD)", opts.ObjectType, opts.Dimension)
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.Stats.FaceCount,
		result.CacheInfo.GenerateHit)

	return writeArtifacts(result.Artifacts, opts, output)
}

// writeArtifacts writes rendered artifacts to disk, deriving file names from
// the object type when no output path is given.
func writeArtifacts(artifacts map[string][]byte, opts pipeline.Options, output string) error {
	base := artifactBase(output, opts.ObjectType, opts.Dimension)

	for _, format := range opts.Formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if output != "" && len(opts.Formats) == 1 && filepath.Ext(output) != "" {
			path = output
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// artifactBase derives the output base path: an explicit output with its
// extension stripped, or "<type><dim>d" in the working directory.
func artifactBase(output, objectType string, dim int) string {
	if output == "" {
		return fmt.Sprintf("%s%dd", objectType, dim)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// objectTypeNames lists the family names for flag completion.
func objectTypeNames() []string {
	types := object.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
