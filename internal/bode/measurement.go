package bode

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrHeaderNotFound reports that a measurement CSV contains no column
// header line. It is distinct from file-access errors so callers can tell
// a malformed file apart from an empty but well-formed one.
var ErrHeaderNotFound = errors.New("bode: measurement data header not found")

// measurementHeader starts the column header line of an oscilloscope
// frequency-response CSV export.
const measurementHeader = "Frequency(Hz)"

// LoadMeasurement parses an oscilloscope's frequency-response CSV export.
// Preamble lines up to and including the header line are skipped; data
// rows need at least three comma-separated numeric fields
// (frequency, magnitude_db, phase_deg), extra fields are ignored. A row
// with a short field count or a non-numeric field is dropped whole; a
// partial record is never appended. Row order follows file order.
func LoadMeasurement(path string) (*Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bode: open measurement export: %w", err)
	}
	lines := strings.Split(string(data), "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), measurementHeader) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, ErrHeaderNotFound
	}

	s := &Series{}
	for _, line := range lines[start:] {
		parts := strings.Split(strings.TrimSpace(line), ",")
		if len(parts) < 3 {
			continue
		}
		freq, errF := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		mag, errM := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		phase, errP := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if errF != nil || errM != nil || errP != nil {
			continue
		}
		s.Freq = append(s.Freq, freq)
		s.MagDB = append(s.MagDB, mag)
		s.PhaseDeg = append(s.PhaseDeg, phase)
	}
	return s, nil
}
