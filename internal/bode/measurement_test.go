package bode

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMeasurementSkipsPreambleAndBadRows(t *testing.T) {
	content := "junk\n" +
		"Frequency(Hz),Amplitude(dB),Phase(Deg)\n" +
		"1000,-3.0,-44.9\n" +
		"bad,row\n" +
		"2000,-6.0,-90.0\n"
	path := writeFixture(t, "meas.csv", content)

	s, err := LoadMeasurement(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{1000.0, 2000.0}, s.Freq)
	assert.Equal(t, []float64{-3.0, -6.0}, s.MagDB)
	assert.Equal(t, []float64{-44.9, -90.0}, s.PhaseDeg)
}

func TestLoadMeasurementHeaderNotFound(t *testing.T) {
	// Plenty of valid-looking rows, but no header line anywhere.
	content := "1000,-3.0,-44.9\n2000,-6.0,-90.0\n"
	path := writeFixture(t, "meas.csv", content)

	_, err := LoadMeasurement(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestLoadMeasurementHeaderWithLeadingWhitespace(t *testing.T) {
	content := "  Frequency(Hz),Amplitude(dB),Phase(Deg)\n1000,-3.0,-44.9\n"
	path := writeFixture(t, "meas.csv", content)

	s, err := LoadMeasurement(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestLoadMeasurementRowsAreAtomic(t *testing.T) {
	// One bad field poisons the whole row; nothing partial is appended.
	content := "Frequency(Hz),Amplitude(dB),Phase(Deg)\n" +
		"1000,-3.0,oops\n" +
		"oops,-3.0,-44.9\n" +
		"2000,-6.0,-90.0\n"
	path := writeFixture(t, "meas.csv", content)

	s, err := LoadMeasurement(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{2000.0}, s.Freq)
	assert.Equal(t, []float64{-6.0}, s.MagDB)
	assert.Equal(t, []float64{-90.0}, s.PhaseDeg)
	assert.Equal(t, len(s.Freq), len(s.MagDB))
	assert.Equal(t, len(s.Freq), len(s.PhaseDeg))
}

func TestLoadMeasurementIgnoresExtraFields(t *testing.T) {
	content := "Frequency(Hz),Amplitude(dB),Phase(Deg),Gain,Flag\n" +
		"1000,-3.0,-44.9,0.707,ok\n"
	path := writeFixture(t, "meas.csv", content)

	s, err := LoadMeasurement(path)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	assert.Equal(t, 1000.0, s.Freq[0])
	assert.Equal(t, -3.0, s.MagDB[0])
	assert.Equal(t, -44.9, s.PhaseDeg[0])
}

func TestLoadMeasurementShortRowsSkipped(t *testing.T) {
	content := "Frequency(Hz),Amplitude(dB),Phase(Deg)\n" +
		"1000,-3.0\n" +
		"\n" +
		"2000,-6.0,-90.0\n"
	path := writeFixture(t, "meas.csv", content)

	s, err := LoadMeasurement(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{2000.0}, s.Freq)
}

func TestLoadMeasurementEmptyDataRegion(t *testing.T) {
	// Well-formed but empty: header present, no rows. Not an error.
	path := writeFixture(t, "meas.csv", "Frequency(Hz),Amplitude(dB),Phase(Deg)\n")

	s, err := LoadMeasurement(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadMeasurementCRLFLineEndings(t *testing.T) {
	content := "junk\r\nFrequency(Hz),Amplitude(dB),Phase(Deg)\r\n1000,-3.0,-44.9\r\n"
	path := writeFixture(t, "meas.csv", content)

	s, err := LoadMeasurement(path)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, -44.9, s.PhaseDeg[0])
}

func TestLoadMeasurementMissingFile(t *testing.T) {
	_, err := LoadMeasurement(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
