package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/web/server"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "whitted-web"
	app.Usage = "serve the live render preview API"
	app.Flags = []cli.Flag{
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
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}

		port := ctx.Int("port")
		logger.Noticef("Whitted Raytracer Web Server")
		logger.Noticef("Render stream at ws://localhost:%d/api/render?scene=default", port)
		return server.NewServer(port, ctx.String("dir")).Start()
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
