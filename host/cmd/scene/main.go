package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	gameui "github.com/nobonobo/mesh-scene/host/ui"
)

func main() {
	app := &cli.App{
		Name:  "scene",
		Usage: "animated mesh scene demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "view",
				Usage: "view to open after loading: home, basic or interactive",
				Value: gameui.ViewNameHome,
			},
			&cli.StringFlag{
				Name:  "params",
				Usage: "TOML file with the initial control panel values",
			},
		},
		Action: func(ctx *cli.Context) error {
			return runApplication(gameui.Options{
				InitialView: ctx.String("view"),
				ParamsPath:  ctx.String("params"),
			})
		},
	}

	slog.Info("Started")
	if err := app.Run(os.Args); err != nil {
		slog.Error("Crashed",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	slog.Info("Stopped")
}
