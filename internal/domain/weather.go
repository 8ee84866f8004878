package domain

import (
	"strconv"
	"strings"
)

// Current conditions at a location, in metric units.
type WeatherSnapshot struct {
	TemperatureCelsius   float64
	ConditionMain        string
	ConditionDescription string
	HumidityPercent      int
}

// Complete reports whether every field carries a non-zero value.
// A legitimate 0°C or 0% humidity reading is treated as incomplete.
func (w WeatherSnapshot) Complete() bool {
	return w.TemperatureCelsius != 0 &&
		w.ConditionMain != "" &&
		w.ConditionDescription != "" &&
		w.HumidityPercent != 0
}

// TemperatureFahrenheit converts with celsius * 9 / 5 + 32, evaluated left to right.
func (w WeatherSnapshot) TemperatureFahrenheit() float64 {
	return w.TemperatureCelsius*9/5 + 32
}

// Report renders the human-readable summary for city.
func (w WeatherSnapshot) Report(city string) string {
	var b strings.Builder
	b.WriteString("The weather in ")
	b.WriteString(city)
	b.WriteString(" is currently ")
	b.WriteString(w.ConditionMain)
	b.WriteString(" with a temperature of ")
	b.WriteString(formatFloat(w.TemperatureCelsius))
	b.WriteString(" degrees Celsius (")
	b.WriteString(formatDecimal(w.TemperatureFahrenheit()))
	b.WriteString(" degrees Fahrenheit) and humidity of ")
	b.WriteString(strconv.Itoa(w.HumidityPercent))
	b.WriteString("%.")
	return b.String()
}

// formatDecimal prints the shortest representation but always keeps a
// fractional part, so 59 renders as "59.0".
func formatDecimal(f float64) string {
	s := formatFloat(f)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
