package solverdriver

import (
	"context"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/kvikrouting/cvrp-pbo/clarkewright"
	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/kneighbors"
	"github.com/kvikrouting/cvrp-pbo/pbo"
	"github.com/kvikrouting/cvrp-pbo/route"
	"github.com/kvikrouting/cvrp-pbo/twoopt"
)

// Result is the outcome of a full Solve: the final RouteSet decoded from the
// solver's assignment, and the objective value it reports.
type Result struct {
	Routes  *route.RouteSet
	Optimum int
}

// Driver orchestrates the full pipeline: ClarkeWright, TwoOpt, KNeighbors,
// PBO encode/serialize, the external solver subprocess, and decode. Stages
// run single-threaded; each runs to completion before the next begins.
type Driver struct {
	cfg driverConfig
}

// New builds a Driver from the given Options. Vehicles and neighbor count
// must both be set via WithVehicles/WithNeighbors, or Solve returns an
// error — there is no sensible default fleet size for an arbitrary Instance.
func New(opts ...Option) *Driver {
	cfg := driverConfig{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver{cfg: cfg}
}

// Solve runs the full pipeline against inst and returns the final routes.
func (d *Driver) Solve(ctx context.Context, inst *instance.Instance) (*Result, error) {
	log := d.cfg.logger

	log.Info("clarkewright: building initial routes", zap.Int("vehicles", d.cfg.vehicles))
	rs, err := clarkewright.Build(inst, d.cfg.vehicles)
	if err != nil {
		return nil, stageErr("clarkewright", err)
	}

	log.Info("twoopt: improving routes")
	twoopt.ImproveAll(inst, rs)

	log.Info("kneighbors: building candidate matrices", zap.Int("k", d.cfg.neighbors))
	candidates, err := kneighbors.BuildAll(inst, rs, d.cfg.neighbors)
	if err != nil {
		return nil, stageErr("kneighbors", err)
	}

	slots := rs.Slots()

	log.Info("pbo: encoding model", zap.Int("vehicles", len(slots)))
	model, err := pbo.Encode(inst, candidates, slots)
	if err != nil {
		return nil, stageErr("pbo.encode", err)
	}

	log.Info("pbo: invoking external solver", zap.String("command", d.cfg.solverCommand))
	output, err := d.runSolver(ctx, pbo.Serialize(model))
	if err != nil {
		return nil, stageErr("pbo.solve", err)
	}

	sol, err := pbo.ParseOutput(output)
	if err != nil {
		return nil, stageErr("pbo.decode", err)
	}

	decoded, err := pbo.DecodeRoutes(model, sol, slots, inst.N)
	if err != nil {
		return nil, stageErr("pbo.decode", err)
	}

	log.Info("solve complete", zap.Int("optimum", sol.Optimum))

	return &Result{Routes: decoded, Optimum: sol.Optimum}, nil
}

// runSolver writes input to a scratch file, spawns the configured solver
// command on it, and returns the captured stdout. Both scratch files are
// removed on every exit path. A non-zero exit, a spawn error, or a context
// cancellation is reported as ErrSolveFailed; when the context deadline
// expires, whatever the solver wrote before it was stopped is returned.
func (d *Driver) runSolver(ctx context.Context, input string) (string, error) {
	files, cleanup, err := newScratchFiles(d.cfg.tempDir)
	if err != nil {
		return "", ErrSolveFailed
	}
	defer cleanup()

	if err := os.WriteFile(files.inputPath, []byte(input), 0o644); err != nil {
		return "", ErrSolveFailed
	}

	runCtx := ctx
	if d.cfg.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, d.cfg.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, d.cfg.solverCommand, files.inputPath)
	outFile, err := os.Create(files.outputPath)
	if err != nil {
		return "", ErrSolveFailed
	}
	cmd.Stdout = outFile

	runErr := cmd.Run()
	_ = outFile.Close()
	if runErr != nil {
		// An expired wall-clock limit is not a failure: the solver's
		// best-so-far `o` line is still accepted. Only a spawn/exit failure
		// other than deadline exceeded is treated as SolveFailed.
		if runCtx.Err() != context.DeadlineExceeded {
			return "", ErrSolveFailed
		}
	}

	data, err := os.ReadFile(files.outputPath)
	if err != nil {
		return "", ErrSolveFailed
	}

	return string(data), nil
}
