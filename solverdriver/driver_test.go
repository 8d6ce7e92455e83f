package solverdriver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeSolver(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-solver.sh")
	script := "#!/bin/sh\n" + body
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func TestRunSolver_CapturesStdout(t *testing.T) {
	solver := writeFakeSolver(t, "echo 's OPTIMUM FOUND'\necho 'o 7'\necho 'v x1 -x2'\n")
	d := New(WithSolverCommand(solver))

	out, err := d.runSolver(context.Background(), "* model\n")
	require.NoError(t, err)
	assert.Contains(t, out, "o 7")
	assert.Contains(t, out, "v x1 -x2")
}

func TestRunSolver_NonZeroExit_SolveFailed(t *testing.T) {
	solver := writeFakeSolver(t, "exit 1\n")
	d := New(WithSolverCommand(solver))

	_, err := d.runSolver(context.Background(), "* model\n")
	assert.ErrorIs(t, err, ErrSolveFailed)
}

func TestRunSolver_RemovesScratchFiles(t *testing.T) {
	dir := t.TempDir()
	solver := writeFakeSolver(t, "echo 'o 1'\n")
	d := New(WithSolverCommand(solver), WithTempDir(dir))

	_, err := d.runSolver(context.Background(), "* model\n")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWithVehicles_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { WithVehicles(0) })
}

func TestWithSolverCommand_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { WithSolverCommand("") })
}

func TestStageError_UnwrapsToUnderlyingError(t *testing.T) {
	base := errors.New("boom")
	err := stageErr("clarkewright", base)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "clarkewright")
}
