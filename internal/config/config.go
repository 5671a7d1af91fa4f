package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Run modes selected by RUN_MODE.
const (
	RunModeOnce  = "once"
	RunModeServe = "serve"
)

// Default upstream endpoints. Overridable via env so tests and mirrors can
// point elsewhere.
const (
	DefaultAPODAPIURL   = "https://api.nasa.gov/planetary/apod"
	DefaultPeopleAPIURL = "http://api.open-notify.org/astros.json"
	DefaultISSAPIURL    = "http://api.open-notify.org/iss-now.json"
)

const defaultUpdateInterval = 6 * time.Hour

type Config struct {
	NASAAPIKey       string
	GitHubRepository string
	ReadmePath       string
	RunMode          string
	UpdateInterval   time.Duration
	Port             string
	DatabaseURL      string
	AllowedOrigins   []string
	APODAPIURL       string
	PeopleAPIURL     string
	ISSAPIURL        string
}

func Load() (*Config, error) {
	apiKey := os.Getenv("NASA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("NASA_API_KEY is required")
	}

	runMode := os.Getenv("RUN_MODE")
	if runMode == "" {
		runMode = RunModeOnce
	}
	if runMode != RunModeOnce && runMode != RunModeServe {
		return nil, fmt.Errorf("RUN_MODE must be %q or %q, got %q", RunModeOnce, RunModeServe, runMode)
	}

	interval := defaultUpdateInterval
	if raw := os.Getenv("UPDATE_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid UPDATE_INTERVAL %q: %w", raw, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("UPDATE_INTERVAL must be positive, got %q", raw)
		}
		interval = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	var allowedOrigins []string
	if origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	} else {
		allowedOrigins = []string{"*"}
	}

	apodURL := os.Getenv("APOD_API_URL")
	if apodURL == "" {
		apodURL = DefaultAPODAPIURL
	}

	peopleURL := os.Getenv("PEOPLE_API_URL")
	if peopleURL == "" {
		peopleURL = DefaultPeopleAPIURL
	}

	issURL := os.Getenv("ISS_API_URL")
	if issURL == "" {
		issURL = DefaultISSAPIURL
	}

	return &Config{
		NASAAPIKey:       apiKey,
		GitHubRepository: os.Getenv("GITHUB_REPOSITORY"),
		ReadmePath:       os.Getenv("README_PATH"),
		RunMode:          runMode,
		UpdateInterval:   interval,
		Port:             port,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AllowedOrigins:   allowedOrigins,
		APODAPIURL:       apodURL,
		PeopleAPIURL:     peopleURL,
		ISSAPIURL:        issURL,
	}, nil
}
