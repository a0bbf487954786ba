package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir"
	"github.com/cwbudde/algo-blockfir/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", writeConfig(t, "log_level: error\n")}, args...))

	err := root.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestBackendsCommand(t *testing.T) {
	out, err := runCLI(t, "backends")
	require.NoError(t, err)

	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "unrolled")
	assert.Contains(t, out, "*")
}

func TestDesignCommand(t *testing.T) {
	out, err := runCLI(t, "design", "--taps", "5", "--cutoff", "0.2", "--type", "q15")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "q15")
}

func TestDesignCommandResponse(t *testing.T) {
	out, err := runCLI(t, "design", "--taps", "31", "--cutoff", "0.125", "--window", "hamming", "--response", "256")
	require.NoError(t, err)

	assert.Contains(t, out, "DC gain:")
	assert.Contains(t, out, "-3 dB point:")
}

func TestDesignCommandErrors(t *testing.T) {
	_, err := runCLI(t, "design", "--type", "f64")
	require.Error(t, err)

	_, err = runCLI(t, "design", "--cutoff", "0.7")
	require.Error(t, err)

	_, err = runCLI(t, "design", "--window", "welch")
	require.Error(t, err)

	_, err = runCLI(t, "design", "--taps", "31", "--response", "100")
	require.Error(t, err)
}

func TestRunCommandFromFile(t *testing.T) {
	path := writeConfig(t, `
log_level: error
sample_type: f32
variant: fir
backend: generic
block_size: 4
design:
  coefficients: [0.25, 0.25, 0.25, 0.25]
signal:
  kind: impulse
  amplitude: 1
  blocks: 2
`)

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"run", "--config", path})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Fir filter, f32 samples, backend generic")
	assert.Contains(t, out.String(), "taps 4, block 4 -> 4, 2 blocks")
}

func TestRunCommandFlags(t *testing.T) {
	out, err := runCLI(t, "run", "--type", "q31", "--variant", "decimate",
		"--factor", "4", "--block-size", "32", "--blocks", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Decimate filter, q31 samples")
	assert.Contains(t, out, "Tone gain at")
	assert.Contains(t, out, "block 32 -> 8")
}

func TestRunCommandResample(t *testing.T) {
	out, err := runCLI(t, "run", "--variant", "resample", "--up", "3", "--down", "2",
		"--block-size", "64", "--backend", "unrolled")
	require.NoError(t, err)

	assert.Contains(t, out, "Resample filter, q15 samples, backend unrolled")
	assert.Contains(t, out, "block 64 -> 96")
}

func TestRunCommandErrors(t *testing.T) {
	_, err := runCLI(t, "run", "--variant", "decimate", "--factor", "3", "--block-size", "32")
	require.ErrorIs(t, err, fir.ErrBlockNotMultiple)

	_, err = runCLI(t, "run", "--backend", "nope")
	require.ErrorIs(t, err, fir.ErrUnknownBackend)

	_, err = runCLI(t, "run", "--type", "f64")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestComputeStats(t *testing.T) {
	s := computeStats([]float64{1, -1, 1, -1})

	assert.Equal(t, 4, s.count)
	assert.InDelta(t, -1, s.min, 0)
	assert.InDelta(t, 1, s.max, 0)
	assert.InDelta(t, 0, s.mean, 1e-15)
	assert.InDelta(t, 1, s.rms, 1e-15)
	assert.InDelta(t, math.Sqrt(4.0/3), s.stdDev, 1e-12)

	assert.Equal(t, signalStats{}, computeStats(nil))
}

func TestSummarizeResponse(t *testing.T) {
	// Bins of a 8-point FFT: 0, 1/8, 2/8, 3/8, 4/8 cycles/sample.
	s := summarizeResponse([]float64{1, 0.9, 0.5, 0.1, 0.01})

	assert.InDelta(t, 0, s.dcDB, 1e-12)
	assert.InDelta(t, 0.25, s.corner, 1e-12)
	assert.InDelta(t, -40, s.nyquistDB, 1e-9)
}
