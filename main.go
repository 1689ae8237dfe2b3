package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

var logger = log.New("raytracer")

func main() {
	app := cli.NewApp()
	app.Name = "go-whitted-raytracer"
	app.Usage = "render scenes using Whitted-style recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render a built-in scene or a JSON scene file. Flags override the scene's own
image size, field of view and tracing parameters.

The image is written to output/<scene>/render_<timestamp>.<format> unless
--out is given.`,
			Action: renderScene,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name or path to a .json scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "output format: png or ppm (default: from the output extension)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width (0 keeps the scene's)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height (0 keeps the scene's)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (0 keeps the scene's)",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: -1,
					Usage: "max recursion depth (-1 keeps the scene's)",
				},
				cli.Float64Flag{
					Name:  "bias",
					Usage: "shadow bias (unset keeps the scene's)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 uses every CPU)",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 2.2,
					Usage: "display gamma",
				},
			},
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: listScenes,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory scanned for JSON scenes",
				},
			},
		},
		{
			Name:   "serve",
			Usage:  "serve the live render preview API",
			Action: serve,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory scanned for JSON scenes",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
