package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/pkg/pipeline"
	"github.com/mdimension/mdim/pkg/scene"
)

// sceneCommand creates the scene command group.
func (c *CLI) sceneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Save and render scene files",
		Long: `Save and render scene files.

A scene file is a TOML description of one object, its transform state,
and the view settings. Scenes make a configuration reproducible: init
writes a starter file, render runs it through the pipeline.`,
	}

	cmd.AddCommand(c.sceneInitCommand())
	cmd.AddCommand(c.sceneRenderCommand())

	return cmd
}

// sceneInitCommand creates the "scene init" subcommand.
func (c *CLI) sceneInitCommand() *cobra.Command {
	var (
		objectType string
		dimension  int
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &scene.Scene{
				Object: scene.ObjectSpec{
					Type:      objectType,
					Dimension: dimension,
				},
				View: scene.ViewSpec{
					FacesVisible: true,
				},
			}
			if err := scene.Save(args[0], s); err != nil {
				return err
			}
			printSuccess("Wrote %s", args[0])
			printNextStep("Render it", fmt.Sprintf("mdim scene render %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&objectType, "type", "t", "hypercube", "object family")
	cmd.Flags().IntVarP(&dimension, "dimension", "d", defaultDimension, "ambient dimension")
	return cmd
}

// sceneRenderCommand creates the "scene render" subcommand.
func (c *CLI) sceneRenderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Run a scene file through the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runSceneRender(cmd.Context(), args[0], formats, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// runSceneRender loads the scene and executes the pipeline with its
// settings.
func (c *CLI) runSceneRender(ctx context.Context, path string, formats []string, output string, noCache bool) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		ObjectType:   s.Object.Type,
		Dimension:    s.Object.Dimension,
		Config:       s.Object.Config,
		Transform:    s.Transform.State(),
		Formats:      formats,
		Distance:     s.View.Distance,
		FacesVisible: s.View.FacesVisible,
		Size:         s.View.Size,
		Logger:       c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering scene %s...", s.Name))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Scene render failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered scene %s", s.Name)
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.Stats.FaceCount,
		result.CacheInfo.GenerateHit)

	return writeArtifacts(result.Artifacts, opts, output)
}
