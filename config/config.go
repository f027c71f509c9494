package config

import "os"

// Service endpoint defaults; overridable so tests and deploys can point
// at substitutes without touching component code.
const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	defaultORSURL       = "https://api.openrouteservice.org"
	defaultPort         = "8080"
)

// Config holds every credential and endpoint the service reads from the
// environment. Loaded once at startup and injected into components.
type Config struct {
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	RecipientNumber   string
	ORSAPIKey         string

	NominatimURL string
	OverpassURL  string
	ORSURL       string
	Port         string
}

func Load() Config {
	return Config{
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		RecipientNumber:   os.Getenv("VERIFIED_RECIPIENT_NUMBER"),
		ORSAPIKey:         os.Getenv("ORS_API_KEY"),
		NominatimURL:      getOrDefault("NOMINATIM_URL", defaultNominatimURL),
		OverpassURL:       getOrDefault("OVERPASS_URL", defaultOverpassURL),
		ORSURL:            getOrDefault("ORS_URL", defaultORSURL),
		Port:              getOrDefault("PORT", defaultPort),
	}
}

// TelephonyConfigured reports whether all four call credentials are set.
// Missing telephony config degrades to a skipped call, never an error.
func (c Config) TelephonyConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioPhoneNumber != "" && c.RecipientNumber != ""
}

func getOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
