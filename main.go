package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quantsim/marketreplay/config"
	"github.com/quantsim/marketreplay/engine"
	"github.com/quantsim/marketreplay/eventholder"
	"github.com/quantsim/marketreplay/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "marketreplay",
		Usage: "replays historical bars through a live-feed shaped interface",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the replay run config",
				Value:   "config.json",
			},
			&cli.StringFlag{
				Name:  "loglevel",
				Usage: "overrides the config log level",
			},
			&cli.BoolFlag{
				Name:  "baseline",
				Usage: "print the baseline cumulative-return table after the replay",
				Value: true,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.ReadConfigFromFile(c.String("config"))
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if lvl := c.String("loglevel"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}
	cfg.PrintSetting()

	queue := &eventholder.Holder{}
	feed, err := engine.NewFromConfig(context.Background(), cfg, queue)
	if err != nil {
		return err
	}

	log := logging.New("MAIN")
	var ticks int
	for feed.IsRunning() {
		feed.AdvanceAll()
		ticks++
		// drain the feed-advanced notifications the way a strategy consumer
		// would before acting on the newly revealed bars
		for ev := queue.NextEvent(); ev != nil; ev = queue.NextEvent() {
			log.Debug().Time("tick", ev.GetTime()).Msg("feed advanced")
		}
	}
	log.Info().Int("ticks", ticks).Msg("replay complete")

	if c.Bool("baseline") {
		baseline, err := feed.Baseline()
		if err != nil {
			return err
		}
		return baseline.WriteTable(os.Stdout)
	}
	return nil
}
