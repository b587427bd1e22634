package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/josecleiton/dominosim/app/config"
	"github.com/josecleiton/dominosim/app/controllers"
	"github.com/josecleiton/dominosim/app/game"
	"github.com/josecleiton/dominosim/app/utils"
)

func main() {
	cfg, err := config.ParseConfigFromArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	level, err := utils.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	utils.SetLogger(utils.NewLogger(level, os.Stderr))

	opts := game.SimulationOptions{
		Deal: game.DealOptions{MaxIterations: cfg.MaxDealIterations},
	}

	if cfg.Addr != "" {
		serve(cfg.Addr, opts)
		return
	}

	if err := simulate(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func serve(addr string, opts game.SimulationOptions) {
	http.HandleFunc("/match", controllers.MatchHandler(opts))

	utils.Log.Infof("Server started at http://%s/match", addr)

	err := http.ListenAndServe(addr, nil)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func simulate(cfg config.Config, opts game.SimulationOptions) error {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = utils.NewSeed(); err != nil {
			return err
		}
	}
	utils.Log.WithField("seed", seed).Info("simulating match")

	rnd := game.NewRandomness(seed)

	if !cfg.JSON {
		_, err := game.Simulate(rnd, controllers.NewConsoleDisplay(os.Stdout, cfg.Glyphs), opts)
		return err
	}

	transcript := controllers.NewTranscript(seed)
	if _, err := game.Simulate(rnd, transcript, opts); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(transcript)
}
