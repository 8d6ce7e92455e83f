// Command cvrpsolve is the CLI driver for the CVRP solver core: it parses
// the instance path, vehicle count K, neighbor count k, and the external
// solver command, then calls straight into solverdriver.Driver.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kvikrouting/cvrp-pbo/instanceio"
	"github.com/kvikrouting/cvrp-pbo/solverdriver"
)

// flags holds every cvrpsolve command-line option: instance path, fleet
// size, neighbor count, solver command, timeout, output path, and log
// level.
type flags struct {
	instancePath  string
	vehicles      int
	neighbors     int
	solverCommand string
	timeout       int64
	outPath       string
	logLevel      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the cvrpsolve cobra command tree.
func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "cvrpsolve",
		Short: "Solve a Capacitated Vehicle Routing Problem instance",
		Long: "cvrpsolve runs the three-stage hybrid CVRP solver: Clarke-Wright " +
			"savings construction + 2-opt, k-nearest-neighbor edge pruning, and a " +
			"pseudo-Boolean optimization encoding solved by an external PBO solver.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&f.instancePath, "instance", "", "path to the instance JSON file (required)")
	cmd.Flags().IntVar(&f.vehicles, "vehicles", 0, "target fleet size K (required)")
	cmd.Flags().IntVar(&f.neighbors, "k", 5, "neighbor count for KNeighbors candidate-edge pruning")
	cmd.Flags().StringVar(&f.solverCommand, "solver", "", "external PBO solver command (required)")
	cmd.Flags().Int64Var(&f.timeout, "solver-timeout", 0, "solver wall-clock time limit in seconds (0 = none)")
	cmd.Flags().StringVar(&f.outPath, "out", "", "write the final RouteSet as JSON to this path")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	_ = cmd.MarkFlagRequired("instance")
	_ = cmd.MarkFlagRequired("vehicles")
	_ = cmd.MarkFlagRequired("solver")

	return cmd
}

// run wires flags into instanceio/solverdriver, reporting the failing
// stage on error; any error propagates up to Execute, which exits non-zero.
func run(f *flags) error {
	logger, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	inst, err := instanceio.LoadInstance(f.instancePath)
	if err != nil {
		logger.Error("failed to load instance", zap.Error(err))
		return err
	}

	opts := []solverdriver.Option{
		solverdriver.WithVehicles(f.vehicles),
		solverdriver.WithNeighbors(f.neighbors),
		solverdriver.WithSolverCommand(f.solverCommand),
		solverdriver.WithLogger(logger),
	}
	if f.timeout > 0 {
		opts = append(opts, solverdriver.WithTimeout(time.Duration(f.timeout)*time.Second))
	}

	driver := solverdriver.New(opts...)

	res, err := driver.Solve(context.Background(), inst)
	if err != nil {
		var stageErr *solverdriver.StageError
		if errors.As(err, &stageErr) {
			logger.Error("solve failed", zap.String("stage", stageErr.Stage), zap.Error(stageErr.Err))
		} else {
			logger.Error("solve failed", zap.Error(err))
		}

		return err
	}

	fmt.Printf("optimum: %d\n", res.Optimum)
	for _, r := range res.Routes.Routes() {
		fmt.Printf("route: %v cost=%d\n", r.Seq, r.Cost(inst))
	}

	if f.outPath != "" {
		if err := instanceio.WriteResult(f.outPath, res, inst); err != nil {
			logger.Error("failed to write result", zap.Error(err))
			return err
		}
	}

	return nil
}

// newLogger builds a zap logger at the requested level, failing on an
// unrecognized level name rather than silently defaulting.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("cvrpsolve: invalid --log-level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
