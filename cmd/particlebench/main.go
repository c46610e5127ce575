// Command particlebench compares the framealloc allocators with the Go heap
// on a simulated particle workload.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/framealloc/internal/bench"
	"github.com/pavanmanishd/framealloc/internal/config"
	"github.com/pavanmanishd/framealloc/internal/report"
)

var log = logrus.New()

var (
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of worker goroutines in the threaded and stack scenarios",
	}
	objectsFlag = &cli.IntFlag{
		Name:  "objects",
		Usage: "Stack allocations per worker per frame",
	}
	framesFlag = &cli.IntFlag{
		Name:  "frames",
		Usage: "Number of simulated frames",
	}
	spawnFlag = &cli.IntFlag{
		Name:  "spawn",
		Usage: "Particles spawned per system per frame",
	}
	lifetimeFlag = &cli.IntFlag{
		Name:  "max-lifetime",
		Usage: "Longest particle lifetime in frames",
	}
	capacityFlag = &cli.IntFlag{
		Name:  "pool-capacity",
		Usage: "Slots per pool",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the lifetime generator",
	}
	csvFlag = &cli.StringFlag{
		Name:    "csv",
		Usage:   "Write per-frame samples to this CSV file",
		Aliases: []string{"o"},
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (error, warn, info, debug)",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)

func newApp() *cli.App {
	app := &cli.App{
		Name:  "particlebench",
		Usage: "benchmark stack and pool allocators against the Go heap",
		Description: "Every flag can also be set through the environment with the " +
			config.EnvPrefix + "_ prefix, e.g. " + config.EnvPrefix + "_WORKERS=4.",
		Flags: []cli.Flag{
			workersFlag, objectsFlag, framesFlag, spawnFlag, lifetimeFlag,
			capacityFlag, seedFlag, csvFlag, logLevelFlag, noColorFlag,
		},
	}
	for _, scenario := range bench.Scenarios {
		app.Commands = append(app.Commands, &cli.Command{
			Name:   scenario,
			Usage:  fmt.Sprintf("run the %s scenario", scenario),
			Action: runScenarios(scenario),
		})
	}
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "all",
		Usage:  "run every scenario",
		Action: runScenarios(bench.Scenarios...),
	})
	app.Action = runScenarios(bench.Scenarios...)
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScenarios(scenarios ...string) cli.ActionFunc {
	return func(c *cli.Context) error {
		conf, err := loadConfig(c)
		if err != nil {
			return err
		}
		setupLogger(conf)

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		results, err := run(ctx, conf, scenarios)
		if len(results) > 0 {
			if werr := write(conf, results); werr != nil {
				err = multierror.Append(err, werr)
			}
		}
		return err
	}
}

// loadConfig reads the environment first; flags given on the command line win.
func loadConfig(c *cli.Context) (*config.Config, error) {
	conf, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.IsSet(workersFlag.Name) {
		conf.Workers = c.Int(workersFlag.Name)
	}
	if c.IsSet(objectsFlag.Name) {
		conf.ObjectsPerWorker = c.Int(objectsFlag.Name)
	}
	if c.IsSet(framesFlag.Name) {
		conf.Frames = c.Int(framesFlag.Name)
	}
	if c.IsSet(spawnFlag.Name) {
		conf.ParticlesPerFrame = c.Int(spawnFlag.Name)
	}
	if c.IsSet(lifetimeFlag.Name) {
		conf.MaxLifetime = c.Int(lifetimeFlag.Name)
	}
	if c.IsSet(capacityFlag.Name) {
		conf.PoolCapacity = c.Int(capacityFlag.Name)
	}
	if c.IsSet(seedFlag.Name) {
		conf.Seed = c.Int64(seedFlag.Name)
	}
	if c.IsSet(csvFlag.Name) {
		conf.CSVPath = c.String(csvFlag.Name)
	}
	if c.IsSet(logLevelFlag.Name) {
		conf.LogLevel = c.String(logLevelFlag.Name)
	}
	if c.IsSet(noColorFlag.Name) {
		conf.NoColor = c.Bool(noColorFlag.Name)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return conf, nil
}

func setupLogger(conf *config.Config) {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: conf.NoColor,
		FullTimestamp: true,
	})
	if conf.NoColor {
		color.NoColor = true
	}
}

// run executes scenarios in order. A failing scenario does not stop the
// others; their errors are collected.
func run(ctx context.Context, conf *config.Config, scenarios []string) ([]bench.Result, error) {
	runner := bench.NewRunner(conf, log.WithField("prefix", "bench"))

	var (
		results []bench.Result
		errs    *multierror.Error
	)
	for _, scenario := range scenarios {
		log.WithFields(logrus.Fields{
			"scenario": scenario,
			"workers":  conf.Workers,
			"frames":   conf.Frames,
		}).Info("Running scenario")

		res, err := runner.Run(ctx, scenario)
		results = append(results, res...)
		if err != nil {
			log.WithError(err).WithField("scenario", scenario).Error("Scenario failed")
			errs = multierror.Append(errs, err)
			if ctx.Err() != nil {
				break
			}
		}
	}
	return results, errs.ErrorOrNil()
}

func write(conf *config.Config, results []bench.Result) error {
	colored := !conf.NoColor
	report.WriteTable(os.Stdout, results, colored)

	speedups := report.Speedup(results)
	scenarios := make([]string, 0, len(speedups))
	for s := range speedups {
		scenarios = append(scenarios, s)
	}
	sort.Strings(scenarios)
	for _, s := range scenarios {
		fmt.Printf("%-10s custom vs heap: %s\n", s, report.FormatSpeedup(speedups[s], colored))
	}

	if conf.CSVPath == "" {
		return nil
	}
	f, err := os.Create(conf.CSVPath)
	if err != nil {
		return fmt.Errorf("create csv report: %w", err)
	}
	if err := report.WriteCSV(f, results); err != nil {
		f.Close()
		return fmt.Errorf("write csv report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.WithField("path", conf.CSVPath).Info("CSV report written")
	return nil
}
