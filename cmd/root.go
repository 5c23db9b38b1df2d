// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ljmd "github.com/argonmd/ljmd"
)

var (
	configPath string
	seed       int64
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "mdrun",
	Short: "Lennard-Jones molecular dynamics engine",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a fixed-length molecular dynamics simulation",
	Run: func(cobraCmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := ljmd.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("loading config: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid config: %v", err)
		}

		app := buildApp(cfg, seed)

		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("fatal error: %v", r)
				os.Exit(1)
			}
		}()

		if err := ljmd.WriteInitialFrame(app); err != nil {
			logrus.Fatalf("writing initial trajectory frame: %v", err)
		}

		logrus.Infof("starting run: %d atoms, %d steps, delta=%g", cfg.NAtoms, cfg.NSteps, cfg.Delta)
		for step := uint64(0); step < cfg.NSteps; step++ {
			app.Tick()
		}
		logrus.Info("run complete")
	},
}

func buildApp(cfg *ljmd.Config, seed int64) *ljmd.App {
	box := ljmd.SimBox{
		Origin:    mgl64.Vec3{cfg.BoxOrigin[0], cfg.BoxOrigin[1], cfg.BoxOrigin[2]},
		Dimension: mgl64.Vec3{cfg.BoxLength[0], cfg.BoxLength[1], cfg.BoxLength[2]},
	}
	if err := box.Validate(); err != nil {
		logrus.Fatalf("invalid box: %v", err)
	}

	clock := ljmd.StepClock{Current: 0, Total: cfg.NSteps, Delta: cfg.Delta}
	if err := clock.Validate(); err != nil {
		logrus.Fatalf("invalid step clock: %v", err)
	}

	rdf := &ljmd.RDFParams{
		AtomA: cfg.RDF.AtomA, AtomB: cfg.RDF.AtomB,
		NBins: cfg.RDF.NBins, Range: cfg.RDF.Range,
		Start: cfg.RDF.Start, End: cfg.RDF.End,
		Filename: cfg.RDF.Filename,
	}
	if err := rdf.Validate(cfg.NSteps); err != nil {
		logrus.Fatalf("invalid rdf config: %v", err)
	}

	cutoff := ljmd.LJCutoff{Rc: cfg.Cutoff}
	if err := cutoff.Validate(); err != nil {
		logrus.Fatalf("invalid cutoff: %v", err)
	}

	app := ljmd.NewAppBuilder().
		UseModules(
			ljmd.LoggingModule{Prefix: "mdrun", Debug: logrus.GetLevel() == logrus.DebugLevel},
			ljmd.TimeModule{},
			ljmd.ForceModule{},
			ljmd.IntegratorModule{},
			ljmd.TrajectoryModule{},
			ljmd.ConsoleModule{Stride: cfg.OutputInterval},
		).
		Build()

	commands := app.Commands()
	runID := ljmd.NewRunID()
	commands.AddResources(
		&box,
		&clock,
		rdf,
		&cutoff,
		&ljmd.BatchSize{N: cfg.Batch},
		&ljmd.TrjName{Prefix: cfg.TrjName},
		&ljmd.OutInterval{Steps: cfg.OutputInterval},
		&ljmd.Temperature{},
		&ljmd.ParticleCount{N: cfg.NAtoms},
		&runID,
	)
	logrus.Infof("run id: %s", runID.ID)

	ljmd.SpawnAtoms(commands, &box, ljmd.SpawnConfig{
		N:             cfg.NAtoms,
		AtomName:      cfg.AtomName,
		Sigma:         cfg.AtomSigma,
		Epsilon:       cfg.AtomEpsilon,
		MassAMU:       cfg.AtomMassAMU,
		VelocitySigma: 460,
		Seed:          seed,
	})
	app.FlushCommands()

	return app
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "mdrun.yaml", "path to the run's YAML configuration")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "seed for initial-condition sampling")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
}
