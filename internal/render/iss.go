package render

import (
	"fmt"
	"strconv"
	"time"
)

const issFallback = "\n### 🛰️ Where is the ISS Right Now?\n\nCould not retrieve ISS location data. Please check back later!\n"

// FormatISSLocation renders the live ISS position section. A nil payload
// yields the static fallback; missing coordinates display as "N/A".
func FormatISSLocation(data map[string]any) string {
	if data == nil {
		return issFallback
	}

	position, _ := data["iss_position"].(map[string]any)
	latitude := coordString(position, "latitude")
	longitude := coordString(position, "longitude")
	stamp := formatUnixUTC(data["timestamp"])

	return fmt.Sprintf(
		"\n### 🛰️ Where is the ISS Right Now?\n\nThe International Space Station is currently located at:\n* **Latitude:** `%s`\n* **Longitude:** `%s`\n*(As of %s)*\n\n*(Note: Coordinates update hourly. For a live map, you can visit [Where The ISS At?](http://wheretheiss.at/))*\n",
		latitude, longitude, stamp,
	)
}

// coordString returns the coordinate as the API sent it (Open Notify uses
// strings, but numbers are accepted too), or "N/A" when missing.
func coordString(position map[string]any, key string) string {
	switch v := position[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "N/A"
}

// formatUnixUTC converts a Unix timestamp to a fixed-format UTC string.
// Missing or zero timestamps render "N/A"; non-numeric ones "Invalid
// Timestamp".
func formatUnixUTC(v any) string {
	switch ts := v.(type) {
	case nil:
		return "N/A"
	case float64:
		if ts == 0 {
			return "N/A"
		}
		return time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05 UTC")
	}
	return "Invalid Timestamp"
}
