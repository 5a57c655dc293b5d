package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pondplan/pondplan/internal/advisor"
	"github.com/pondplan/pondplan/internal/calc"
	"github.com/pondplan/pondplan/internal/config"
	"github.com/pondplan/pondplan/internal/store"
	"github.com/pondplan/pondplan/internal/validate"
)

func main() {
	// A .env file can point PONDPLAN_CONFIG at a non-default location.
	_ = godotenv.Load()

	defaultConfig := os.Getenv("PONDPLAN_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "pondplan.yaml"
	}

	configPath := flag.String("config", defaultConfig, "path to config file")
	scenario := flag.String("scenario", "default", "scenario name used in logs and watch-mode deltas")
	watch := flag.Bool("watch", false, "recompute whenever the config file changes")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("pondplan starting", "config", *configPath, "scenario", *scenario)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	results := store.New()

	res, err := estimate(cfg)
	if err != nil {
		slog.Error("estimate failed", "err", err)
		os.Exit(1)
	}
	results.Put(*scenario, res)
	printResult(os.Stdout, res)

	if !*watch {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = config.Watch(ctx, *configPath, func(cfg *config.Config) {
		res, err := estimate(cfg)
		if err != nil {
			slog.Error("estimate failed, keeping previous result", "err", err)
			return
		}
		if prev, had := results.Put(*scenario, res); had {
			slog.Info("estimate updated",
				"scenario", *scenario,
				"days", res.Days,
				"delta_days", res.Days-prev.Result.Days,
			)
		}
		printResult(os.Stdout, res)
	})
	if err != nil {
		slog.Error("config watch failed", "err", err)
		os.Exit(1)
	}
}

// estimate runs the full validate-then-calculate flow for one config.
func estimate(cfg *config.Config) (*calc.Result, error) {
	rules := cfg.ValidationRules()

	inputs, err := validate.Inputs(rules, cfg.ProjectInputs())
	if err != nil {
		return nil, fmt.Errorf("project inputs: %w", err)
	}

	fl, err := cfg.BuildFleet()
	if err != nil {
		return nil, err
	}
	excavators, trucks := fl.Excavators(), fl.Trucks()

	// Fleet validation accumulates: log every bad field of every unit so
	// the user can fix them all in one pass.
	unitErrs := append(validate.ExcavatorFleet(rules, excavators), validate.TruckFleet(rules, trucks)...)
	for _, ue := range unitErrs {
		slog.Warn("invalid fleet unit", "unit", ue.UnitID, "field", string(ue.Field), "err", ue.Err)
	}
	if len(unitErrs) > 0 {
		return nil, fmt.Errorf("fleet has %d invalid field(s), see warnings", len(unitErrs))
	}

	volume := calc.PondVolume(inputs.PondLength, inputs.PondWidth, inputs.PondDepth)

	var res *calc.Result
	if len(excavators) == 0 && len(trucks) == 0 {
		// No fleet configured: estimate from the single-unit project fields.
		res, err = calc.Timeline(inputs.ExcavatorCapacity, inputs.CycleTime,
			inputs.TruckCapacity, inputs.RoundTripTime, volume, inputs.WorkHours)
	} else {
		res, err = calc.Plan(excavators, trucks, volume, inputs.WorkHours)
	}
	if err != nil {
		return nil, err
	}

	res.Warnings = append(res.Warnings, advisor.Evaluate(cfg.AdvisorRules(), res)...)
	return res, nil
}

func printResult(w io.Writer, res *calc.Result) {
	fmt.Fprintf(w, "Estimated timeline: %d day(s) (%.1f working hours)\n", res.Days, res.TotalHours)
	fmt.Fprintf(w, "Excavation rate:    %.1f yd3/h\n", res.ExcavationRate)
	fmt.Fprintf(w, "Hauling rate:       %.1f yd3/h\n", res.HaulingRate)
	fmt.Fprintf(w, "Bottleneck:         %s\n", res.Bottleneck)
	fmt.Fprintf(w, "Confidence:         %s\n", res.Confidence)
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	for _, assumption := range res.Assumptions {
		fmt.Fprintf(w, "Assumes: %s\n", assumption)
	}
}
