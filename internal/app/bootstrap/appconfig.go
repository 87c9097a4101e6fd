// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to EventNet. The
// struct is passed to most lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte key for the CSRF token authenticator

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty disables auth)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@eventnet.example)
	MailFromName string // From display name

	// Branding
	SiteName string // Display name used in OTP emails
	BaseURL  string // e.g., "https://eventnet.example" or "http://localhost:3000"

	// Registration flow tuning
	OTPExpiry            time.Duration // validity window for verification codes
	MinPasswordLen       int           // minimum accepted password length
	StaleRegistrationTTL time.Duration // age after which unverified accounts are reported

	// Abuse protection on the register/login endpoints
	AuthRateLimit  int           // requests per window per client IP
	AuthRateWindow time.Duration // window size
}
