package dto

type ReportResponse struct {
	Status string `json:"status"`
	Report string `json:"report"`
}

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ConditionsResponse struct {
	TemperatureCelsius   float64 `json:"temperature_celsius"`
	ConditionMain        string  `json:"condition_main"`
	ConditionDescription string  `json:"condition_description"`
	HumidityPercent      int     `json:"humidity_percent"`
}

type ErrorResponse struct {
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error"`
}
