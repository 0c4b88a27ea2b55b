package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/webclinic017/EventDrivenTradingSystem/backtest"
	"github.com/webclinic017/EventDrivenTradingSystem/config"
	"github.com/webclinic017/EventDrivenTradingSystem/log"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies"
)

var (
	configPath string
	verbose    bool
)

func main() {
	app := cli.NewApp()
	app.Name = "backtester"
	app.Usage = "event-driven backtesting of trading strategies over daily price history"
	app.Commands = []*cli.Command{
		{
			Name:  "run",
			Usage: "execute a backtest from a json config file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "config",
					Aliases:     []string{"c"},
					Usage:       "path to the run configuration",
					Required:    true,
					Destination: &configPath,
				},
				&cli.BoolFlag{
					Name:        "verbose",
					Usage:       "enable debug logging",
					Destination: &verbose,
				},
			},
			Action: runBacktest,
		},
		{
			Name:   "strategies",
			Usage:  "list the registered strategies",
			Action: listStrategies,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBacktest(_ *cli.Context) error {
	if verbose {
		log.BackTester.SetLevels(true, true, true, true)
		log.Data.SetLevels(true, true, true, true)
		log.Database.SetLevels(true, true, true, true)
		log.Portfolio.SetLevels(true, true, true, true)
	}
	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return err
	}
	bt, err := backtest.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	if err = bt.Run(); err != nil {
		return err
	}
	bt.Statistic.PrintResult()
	return nil
}

func listStrategies(_ *cli.Context) error {
	for _, s := range strategies.GetStrategies() {
		fmt.Printf("%v:\n\t%v\n", s.Name(), s.Description())
	}
	return nil
}
