package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path of a TOML config file (defaults to " + defaultConfigPath + " if present)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  "kind",
			Usage: "value kind: int, float, char or string",
		},
		&cli.BoolFlag{
			Name:  "desc",
			Usage: "sort in descending order",
		},
	}
}

func main() {
	app := &cli.Command{
		Name:  "heapsort",
		Usage: "sort values and inspect binary heaps",
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "sort a few fixed sequences",
				Action: runDemo,
				Flags:  commonFlags(),
			},
			{
				Name:      "sort",
				Usage:     "sort values given as arguments or on stdin",
				ArgsUsage: "[values...]",
				Action:    sortValues,
				Flags:     commonFlags(),
			},
			{
				Name:      "visualize",
				Usage:     "heapify values and print the resulting heap",
				ArgsUsage: "[values...]",
				Action:    visualizeHeap,
				Flags:     commonFlags(),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
