package forecast

// Snapshot is the weather forecast for the wedding date, already converted
// to the units the site displays: whole degrees Celsius and km/h.
type Snapshot struct {
	Date        string `json:"date"`
	Temp        int    `json:"temp"`
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	FeelsLike   int    `json:"feels_like"`
	Humidity    int    `json:"humidity"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	WindSpeed   int    `json:"wind_speed"`
}

// Result is the discriminated outcome consumed by the weather widget.
// Failures are reported in-band; the service never returns a Go error to
// its callers.
type Result struct {
	Success bool      `json:"success"`
	Data    *Snapshot `json:"data,omitempty"`
	Cached  bool      `json:"cached,omitempty"`
	Error   string    `json:"error,omitempty"`
	Advice  string    `json:"advice,omitempty"`
}
