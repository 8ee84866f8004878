package domain

import "strconv"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Render as "(lat, lon)" for messages that must name the location.
func (c Coordinates) String() string {
	return "(" + formatFloat(c.Lat) + ", " + formatFloat(c.Lon) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
