//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&appCfg.Tape, "tape", false, "Print calculations to a VT100 tape instead of the calculator widget.")
	flag.StringVar(&appCfg.Script, "script", "", `Buttons to press at boot, e.g. "12+7=" (c = clear, h = clear history).`)
	showVersion := flag.Bool("version", false, "Print build info and exit.")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		return
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.NewWithConfig(h, appCfg)
		}, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
