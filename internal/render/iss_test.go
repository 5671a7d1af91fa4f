package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatISSLocationUnavailable(t *testing.T) {
	want := "\n### 🛰️ Where is the ISS Right Now?\n\nCould not retrieve ISS location data. Please check back later!\n"
	assert.Equal(t, want, FormatISSLocation(nil))
}

func TestFormatISSLocation(t *testing.T) {
	data := map[string]any{
		"iss_position": map[string]any{
			"latitude":  "12.3456",
			"longitude": "-45.6789",
		},
		"timestamp": float64(1700000000),
	}

	got := FormatISSLocation(data)

	want := "\n### 🛰️ Where is the ISS Right Now?\n\n" +
		"The International Space Station is currently located at:\n" +
		"* **Latitude:** `12.3456`\n" +
		"* **Longitude:** `-45.6789`\n" +
		"*(As of 2023-11-14 22:13:20 UTC)*\n\n" +
		"*(Note: Coordinates update hourly. For a live map, you can visit [Where The ISS At?](http://wheretheiss.at/))*\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatISSLocationTimestamps(t *testing.T) {
	tests := []struct {
		name      string
		timestamp any
		want      string
	}{
		{"numeric timestamp in UTC", float64(1000000000), "*(As of 2001-09-09 01:46:40 UTC)*"},
		{"missing timestamp", nil, "*(As of N/A)*"},
		{"zero timestamp", float64(0), "*(As of N/A)*"},
		{"non-numeric timestamp", "soon", "*(As of Invalid Timestamp)*"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := map[string]any{
				"iss_position": map[string]any{"latitude": "0.0", "longitude": "0.0"},
			}
			if tc.timestamp != nil {
				data["timestamp"] = tc.timestamp
			}

			assert.Contains(t, FormatISSLocation(data), tc.want)
		})
	}
}

func TestFormatISSLocationCoordinates(t *testing.T) {
	t.Run("numeric coordinates are rendered", func(t *testing.T) {
		data := map[string]any{
			"iss_position": map[string]any{
				"latitude":  float64(51.5),
				"longitude": float64(-0.25),
			},
			"timestamp": float64(1700000000),
		}

		got := FormatISSLocation(data)

		assert.Contains(t, got, "* **Latitude:** `51.5`")
		assert.Contains(t, got, "* **Longitude:** `-0.25`")
	})

	t.Run("missing position renders N/A", func(t *testing.T) {
		got := FormatISSLocation(map[string]any{"timestamp": float64(1700000000)})

		assert.Contains(t, got, "* **Latitude:** `N/A`")
		assert.Contains(t, got, "* **Longitude:** `N/A`")
	})
}
