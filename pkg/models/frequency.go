package models

// SeriesData is the JSON projection of one Bode sweep: three parallel
// arrays in file order.
type SeriesData struct {
	Frequency   []float64 `json:"frequency" doc:"Frequency in Hz"`
	MagnitudeDB []float64 `json:"magnitude_db" doc:"Magnitude in dB"`
	PhaseDeg    []float64 `json:"phase_deg" doc:"Phase in degrees"`
}

// CMRRData is the JSON projection of a derived rejection-ratio curve.
type CMRRData struct {
	Frequency []float64 `json:"frequency" doc:"Frequency in Hz"`
	CMRRDB    []float64 `json:"cmrr_db" doc:"Common-mode rejection ratio in dB"`
}
