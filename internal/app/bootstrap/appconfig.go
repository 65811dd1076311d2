// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: advisoryhub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Maximum session cookie lifetime (default: 24h)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// Admin account configuration
	// The dashboard has a single admin identity defined in config rather
	// than a users collection.
	AdminLoginID      string // Login id for password sign-in (default: admin)
	AdminPasswordHash string // bcrypt hash of the admin password (empty disables password login)
	AdminEmails       string // Comma-separated Google account emails allowed to sign in

	// Rate limiting configuration
	RateLimitEnabled       bool          // Enable rate limiting for login attempts (default: true)
	RateLimitLoginAttempts int           // Max failed login attempts before lockout (default: 5)
	RateLimitLoginWindow   time.Duration // Time window for counting failed attempts (default: 15m)
	RateLimitLoginLockout  time.Duration // Lockout duration after exceeding limit (default: 15m)

	// Email/SMTP configuration
	// When MailSMTPHost is empty the mailer is not constructed and the
	// consultation endpoint fails closed with 500.
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit, smtp-relay for Brevo)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for a relay)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (default: info@bimaahinternationalltd.com)
	MailFromName string // From display name (default: Bimaah International)

	// ConsultationTo is the office inbox that receives the admin alert
	// for each consultation request.
	ConsultationTo string

	// Base URL for absolute links in emails and OAuth callbacks
	BaseURL string // e.g., "https://bimaahinternationalltd.com" or "http://localhost:8080"

	// Google OAuth configuration (optional second sign-in method)
	GoogleClientID     string // Google OAuth2 client ID
	GoogleClientSecret string // Google OAuth2 client secret
}
