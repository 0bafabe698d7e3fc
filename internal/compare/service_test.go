package compare

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodeview/internal/bode"
	"bodeview/internal/render"
)

const simContent = "AC Analysis\n" +
	"100 (0.0dB,-5.0°)\n" +
	"1000 (-3.01dB,-45.0°)\n" +
	"10000 (-20.0dB,-84.3°)\n"

const measContent = "Siglent Bode export\n" +
	"Frequency(Hz),Amplitude(dB),Phase(Deg)\n" +
	"100,-0.1,-4.8\n" +
	"1000,-3.0,-44.9\n" +
	"10000,-19.8,-84.0\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestServiceGain(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, render.Options{})

	res, err := svc.Gain(context.Background(), GainRequest{
		SimulationFile:  writeFile(t, dir, "sim.txt", simContent),
		MeasurementFile: writeFile(t, dir, "meas.csv", measContent),
		Title:           "Gain",
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 1000, 10000}, res.Simulation.Freq)
	assert.Equal(t, []float64{0.0, -3.01, -20.0}, res.Simulation.MagDB)
	assert.Equal(t, []float64{100, 1000, 10000}, res.Measurement.Freq)
	assert.Equal(t, "Gain", res.Title)
	assert.NotEqual(t, res.ID.String(), "00000000-0000-0000-0000-000000000000")

	info, err := os.Stat(res.PlotFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestServiceGainExplicitOutputFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, render.Options{})
	out := filepath.Join(dir, "my-gain.png")

	res, err := svc.Gain(context.Background(), GainRequest{
		SimulationFile:  writeFile(t, dir, "sim.txt", simContent),
		MeasurementFile: writeFile(t, dir, "meas.csv", measContent),
		OutputFile:      out,
	})
	require.NoError(t, err)
	assert.Equal(t, out, res.PlotFile)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestServiceGainMissingSimulationFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, render.Options{})

	_, err := svc.Gain(context.Background(), GainRequest{
		SimulationFile:  filepath.Join(dir, "nope.txt"),
		MeasurementFile: writeFile(t, dir, "meas.csv", measContent),
	})
	require.Error(t, err)
}

func TestServiceGainHeaderlessMeasurement(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, render.Options{})

	_, err := svc.Gain(context.Background(), GainRequest{
		SimulationFile:  writeFile(t, dir, "sim.txt", simContent),
		MeasurementFile: writeFile(t, dir, "meas.csv", "1000,-3.0,-44.9\n"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bode.ErrHeaderNotFound)
}

func TestServiceRejection(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, render.Options{})

	simDiff := writeFile(t, dir, "sim_dm.txt", "1000 (0.0dB,0.0°)\n")
	simCM := writeFile(t, dir, "sim_cm.txt", "1000 (-40.0dB,0.0°)\n")
	measDiff := writeFile(t, dir, "meas_dm.csv",
		"Frequency(Hz),Amplitude(dB),Phase(Deg)\n1000,0.0,0.0\n")
	measCM := writeFile(t, dir, "meas_cm.csv",
		"Frequency(Hz),Amplitude(dB),Phase(Deg)\n1000,-38.0,0.0\n")

	res, err := svc.Rejection(context.Background(), RejectionRequest{
		SimulationDiffFile:  simDiff,
		SimulationCMFile:    simCM,
		MeasurementDiffFile: measDiff,
		MeasurementCMFile:   measCM,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{1000.0}, res.SimulationFreq)
	assert.Equal(t, []float64{40.0}, res.SimulationCMRR)
	assert.Equal(t, []float64{38.0}, res.MeasurementCMRR)

	info, err := os.Stat(res.PlotFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
