package weather

// WMO weather interpretation codes as reported by the forecast endpoint.
var conditionLabels = map[int]string{
	0:  "Clear",
	1:  "Mostly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Fog",
	51: "Drizzle",
	53: "Drizzle",
	55: "Drizzle",
	61: "Rain",
	63: "Rain",
	65: "Heavy Rain",
	71: "Snow",
	73: "Snow",
	75: "Heavy Snow",
	80: "Rain Showers",
	81: "Rain Showers",
	82: "Heavy Showers",
	95: "Thunderstorm",
	96: "Thunderstorm",
	99: "Thunderstorm",
}

// ConditionLabel maps a weather code to its human label; unmapped codes
// degrade to "Unknown".
func ConditionLabel(code int) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}
	return "Unknown"
}
