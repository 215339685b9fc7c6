// Command alertctl classifies a single battery temperature and dispatches the result
// to the controller or email sink on stdout.
//
//	alertctl --target controller --strategy passive --temp 36
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"battery_alert/internal/config"
	"battery_alert/internal/logger"
	"battery_alert/internal/models"
	"battery_alert/internal/service"
	"battery_alert/internal/sink"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("alertctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("target", "", "notification target: controller or email")
	fs.String("strategy", "", "cooling strategy: passive, high_active or medium_active")
	fs.Float64("temp", 0, "battery temperature in Celsius")
	fs.String("label", "", "battery brand label")
	fs.String("log-level", logger.WarnLevel, "log level written to stderr")
	return fs
}

// bindFlags exposes the dispatch flags under the cli.* keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"cli.target":   "target",
		"cli.strategy": "strategy",
		"cli.temp":     "temp",
		"cli.label":    "label",
	} {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	v := config.New()
	if err := bindFlags(v, fs); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	target, err := models.ParseTarget(v.GetString("cli.target"))
	if err != nil {
		return usage(stderr, fs, err)
	}
	strategy, err := models.ParseCoolingStrategy(v.GetString("cli.strategy"))
	if err != nil {
		return usage(stderr, fs, err)
	}
	if !fs.Changed("temp") {
		return usage(stderr, fs, errors.New("--temp is required"))
	}
	temp := v.GetFloat64("cli.temp")
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return usage(stderr, fs, fmt.Errorf("temperature must be finite, got %v", temp))
	}

	sinks := sink.Sinks{
		Controller: sink.NewControllerWriter(stdout, cfg.Controller.Header),
		Email:      sink.NewEmailWriter(stdout, cfg.Email.Recipient),
	}
	level, _ := fs.GetString("log-level")
	log := logger.New(level)
	defer func() { _ = log.Sync() }()

	alerts := service.NewAlertService(sinks, nil, log)
	profile := models.DeviceProfile{Strategy: strategy, Label: v.GetString("cli.label")}
	if _, err := alerts.CheckAndAlert(ctx, target, profile, temp); err != nil {
		if service.IsValidation(err) {
			return usage(stderr, fs, err)
		}
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitOK
}

func usage(stderr io.Writer, fs *pflag.FlagSet, err error) int {
	fmt.Fprintf(stderr, "alertctl: %v\n", err)
	fs.PrintDefaults()
	return exitUsage
}
