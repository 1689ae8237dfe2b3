package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/writers"
	"github.com/df07/go-whitted-raytracer/web/server"
)

// renderScene renders a scene to an image file.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	sceneObj, err := createScene(sceneName, overridesFromFlags(ctx))
	if err != nil {
		return err
	}

	out := ctx.String("out")
	format := ctx.String("format")
	if format == "" {
		format = writers.FormatFromPath(out)
	}
	if out == "" {
		out = outputPath(sceneName, format, time.Now())
	}

	logger.Noticef("rendering %q at %dx%d (depth %d)", sceneName, sceneObj.Width, sceneObj.Height, sceneObj.MaxRecursionDepth)

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := renderer.ParallelConfig{NumWorkers: ctx.Int("workers")}
	buf, stats, err := renderer.NewParallelRaytracer(sceneObj, config, log.Printer(logger)).Render(renderCtx, nil)
	if err != nil {
		return fmt.Errorf("render interrupted: %w", err)
	}

	if err := writers.SaveImage(out, format, buf, float32(ctx.Float64("gamma"))); err != nil {
		return err
	}

	renderer.WriteStatsTable(os.Stdout, stats, buf)
	logger.Noticef("render saved as %s", out)
	return nil
}

// listScenes prints the built-in and JSON scenes as a table.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Name", "Group", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Name, info.Group, info.Description})
	}
	table.Render()
	return nil
}

// serve starts the web preview server.
func serve(ctx *cli.Context) error {
	setupLogging(ctx)

	port := ctx.Int("port")
	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", port)
	return server.NewServer(port, ctx.String("dir")).Start()
}

// overridesFromFlags collects the render flags that replace scene tunables
func overridesFromFlags(ctx *cli.Context) scene.Overrides {
	o := scene.Overrides{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		FOV:    ctx.Float64("fov"),
	}
	if ctx.IsSet("bias") {
		bias := ctx.Float64("bias")
		o.ShadowBias = &bias
	}
	if depth := ctx.Int("depth"); depth >= 0 {
		o.MaxRecursionDepth = &depth
	}
	return o
}

// createScene resolves a scene name, applies overrides and validates the result
func createScene(name string, overrides scene.Overrides) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("missing scene name")
	}

	base, err := scene.ByName(name)
	if err != nil {
		return nil, err
	}

	sceneObj := base.WithOverrides(overrides)
	if err := sceneObj.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %w", name, err)
	}
	return sceneObj, nil
}

// outputPath returns output/<scene>/render_<timestamp>.<format>. JSON scene
// paths are reduced to their base name.
func outputPath(sceneName, format string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", base, fmt.Sprintf("render_%s.%s", timestamp, format))
}
