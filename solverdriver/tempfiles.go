package solverdriver

import (
	"os"
	"path/filepath"
)

// scratchFiles holds the paths of the external solver's input/output files
// for one Solve call; the returned cleanup runs via defer so both files
// are removed on every exit path, error paths included.
type scratchFiles struct {
	inputPath  string
	outputPath string
}

// newScratchFiles allocates unique input/output paths under dir (the OS
// default temp directory if dir is empty). Each call gets its own
// os.CreateTemp-backed pair, so concurrent Solve calls in one working
// directory never clobber each other's files.
func newScratchFiles(dir string) (*scratchFiles, func(), error) {
	if dir == "" {
		dir = os.TempDir()
	}

	in, err := os.CreateTemp(dir, "cvrp-pbo-input-*.opb")
	if err != nil {
		return nil, nil, err
	}
	inputPath := in.Name()
	_ = in.Close()

	outputPath := filepath.Join(dir, filepath.Base(inputPath)+".out")

	cleanup := func() {
		_ = os.Remove(inputPath)
		_ = os.Remove(outputPath)
	}

	return &scratchFiles{inputPath: inputPath, outputPath: outputPath}, cleanup, nil
}
