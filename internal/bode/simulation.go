package bode

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// simRecord matches an AC-analysis record anywhere in a line:
//
//	1.0e+03	(-3.01dB,-45.0°)
//
// Frequency in Hz, magnitude in dB, phase in degrees.
var simRecord = regexp.MustCompile(`([0-9.eE+-]+)\s+\(\s*([0-9.eE+-]+)dB\s*,\s*([0-9.eE+-]+)°\s*\)`)

// LoadSimulation parses a circuit simulator's AC-analysis text export.
// Lines without a record, and records whose tokens do not parse as
// numbers, are skipped. Record order follows file order.
func LoadSimulation(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bode: open simulation export: %w", err)
	}
	defer f.Close()

	s := &Series{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := simRecord.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		freq, errF := strconv.ParseFloat(m[1], 64)
		mag, errM := strconv.ParseFloat(m[2], 64)
		phase, errP := strconv.ParseFloat(m[3], 64)
		if errF != nil || errM != nil || errP != nil {
			continue
		}
		s.Freq = append(s.Freq, freq)
		s.MagDB = append(s.MagDB, mag)
		s.PhaseDeg = append(s.PhaseDeg, phase)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bode: read simulation export: %w", err)
	}
	return s, nil
}
