package config

import (
	"os"
	"strconv"
	"time"
)

// Settings holds everything injected from the environment. Nothing here is
// business logic; defaults only exist so a local run works out of the box.
type Settings struct {
	Port          string
	RemoteAPIURL  string
	LocalAPIURL   string
	UseRemote     bool
	SessionSecret string
	ContactPhone  string
	ContactEmail  string
	LogLevel      string
	FlowTTL       time.Duration
}

// Load reads settings from the environment. godotenv.Load is expected to
// have run already (see main).
func Load() Settings {
	s := Settings{
		Port:          getenv("PORT", "8080"),
		RemoteAPIURL:  getenv("API_URL_REMOTE", ""),
		LocalAPIURL:   getenv("BACKEND_URL", "http://localhost:5000"),
		UseRemote:     getenv("USE_REMOTE", "false") == "true",
		SessionSecret: getenv("SESSION_SECRET", ""),
		ContactPhone:  getenv("CONTACT_PHONE", ""),
		ContactEmail:  getenv("CONTACT_EMAIL", ""),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}

	ttlMinutes := 30
	if env := os.Getenv("FLOW_TTL_MINUTES"); env != "" {
		if m, err := strconv.Atoi(env); err == nil && m > 0 {
			ttlMinutes = m
		}
	}
	s.FlowTTL = time.Duration(ttlMinutes) * time.Minute

	return s
}

// APIBaseURL picks the backend origin according to the remote toggle.
func (s Settings) APIBaseURL() string {
	if s.UseRemote && s.RemoteAPIURL != "" {
		return s.RemoteAPIURL
	}
	return s.LocalAPIURL
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
