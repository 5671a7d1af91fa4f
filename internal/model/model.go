package model

import "time"

// Source names as they appear in run reports and logs.
const (
	SourceAPOD   = "apod"
	SourcePeople = "people_in_space"
	SourceISS    = "iss_location"
)

// SourceResult records one upstream's outcome within a single run.
type SourceResult struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// RunReport summarizes one pipeline run. It is kept by the status tracker
// and served as JSON by the status API.
type RunReport struct {
	Sources      []SourceResult `json:"sources"`
	OutputPath   string         `json:"output_path"`
	BytesWritten int            `json:"bytes_written"`
	WriteError   string         `json:"write_error,omitempty"`
	ArchiveError string         `json:"archive_error,omitempty"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
}

// Available reports how many sources returned data this run.
func (r RunReport) Available() int {
	n := 0
	for _, s := range r.Sources {
		if s.Available {
			n++
		}
	}
	return n
}
