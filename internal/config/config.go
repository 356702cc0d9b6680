package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	Log      string
	LogLevel string
	Env      string // dev|prod

	// Content source
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string

	// Contact relay: environment-level fallback for the token normally
	// carried by the contact page record.
	FormspreeID string

	// Optional copy of accepted submissions to the practice inbox.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	ContactInbox string

	SiteURL string
}

// LoadConfig loads .env, reads the environment and applies defaults.
// Logs nothing, so the logger can depend on it and not the other way around.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SanityProjectID:  os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:    def(os.Getenv("SANITY_DATASET"), "production"),
		SanityAPIVersion: def(os.Getenv("SANITY_API_VERSION"), "2024-01-01"),
		SanityToken:      os.Getenv("SANITY_API_READ_TOKEN"),

		FormspreeID: os.Getenv("FORMSPREE_ID"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		ContactInbox: os.Getenv("CONTACT_INBOX"),

		SiteURL: os.Getenv("SITEURL"),
	}

	return cfg, nil
}

// Validate returns warnings and a fatal error (if critical). Nothing here is
// fatal: the site serves its built-in default content with an entirely empty
// environment, so missing integrations only degrade features.
func (c *Config) Validate() (warnings []string, err error) {
	if c.SanityProjectID == "" {
		warnings = append(warnings, "SANITY_PROJECT_ID is empty, serving default content only")
	}

	if c.FormspreeID == "" {
		warnings = append(warnings, "FORMSPREE_ID is empty, contact form relies on per-record relay config")
	}

	if c.SMTPHost == "" || c.SMTPUser == "" || c.ContactInbox == "" {
		warnings = append(warnings, "SMTP is not fully configured, submission copies disabled")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}
