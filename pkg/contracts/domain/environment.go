package domain

// Environment CSV column headers. The spelling is preserved exactly for
// compatibility with the files the schools already submit.
const (
	EnvHeaderTime        = "time"
	EnvHeaderTemperature = "temperature"
	EnvHeaderHumidity    = "humidity"
	EnvHeaderPH          = "ph"
	EnvHeaderEC          = "ec"
)

// EnvironmentReading is one timestamped sensor sample from a school's
// growing environment. The timestamp is carried verbatim from the input
// file; the dashboard treats it as an ordered categorical axis, so no
// layout parsing is applied and exports round-trip exactly.
type EnvironmentReading struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // percent, 0-100
	PH          float64 `json:"ph"`
	EC          float64 `json:"ec"` // measured, dS/m
	School      School  `json:"school"`
}
