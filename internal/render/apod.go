package render

import "fmt"

// Placeholder images used when the APOD payload carries no usable media
// reference.
const (
	imagePlaceholder = "https://via.placeholder.com/600x400.png?text=Image+Not+Available"
	videoPlaceholder = "https://via.placeholder.com/600x400.png?text=APOD+Video"
)

const apodFallback = "\n### Astronomy Picture of the Day (APOD)\n\nCould not retrieve today's Astronomy Picture of the Day. Please check back later!\n"

// FormatAPOD renders the Astronomy Picture of the Day section. A nil payload
// yields the static fallback fragment; otherwise fields are read defensively
// with fallback defaults. Video APODs get a thumbnail (or the generic video
// placeholder) plus a clickable link to the video itself.
func FormatAPOD(data map[string]any) string {
	if data == nil {
		return apodFallback
	}

	title := getStringOr(data, "title", "No Title Available")
	explanation := getStringOr(data, "explanation", "No explanation available.")
	date := getStringOr(data, "date", "Unknown Date")

	var imageURL string
	if getString(data, "media_type") == "video" {
		imageURL = getStringOr(data, "thumbnail_url", videoPlaceholder)
		videoLink := fmt.Sprintf("[Watch Today's APOD Video](%s)", getStringOr(data, "url", "#"))
		explanation = fmt.Sprintf("%s\n\n*Note: Today's APOD is a video. %s*", explanation, videoLink)
	} else {
		// Prefer the HD image, fall back to the standard URL, then the placeholder.
		imageURL = getStringOr(data, "hdurl", getStringOr(data, "url", imagePlaceholder))
	}

	return fmt.Sprintf(
		"\n### Astronomy Picture of the Day (APOD)\n\n![%s](%s)\n**Title:** %s\n**Date:** %s\n\n%s\n",
		title, imageURL, title, date, explanation,
	)
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getStringOr(m map[string]any, key, fallback string) string {
	s := getString(m, key)
	if s != "" {
		return s
	}
	return fallback
}
