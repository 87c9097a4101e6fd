// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EventNet.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: EVENTNET_MONGO_URI, EVENTNET_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "eventnet", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "eventnet_session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "csrf_key", Default: "dev-only-change-me-0123456789ABCDEF", Desc: "CSRF authenticator key (32 bytes in production)"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username (empty disables auth)"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@eventnet.example", Desc: "From email address"},
	{Name: "mail_from_name", Default: "EventNet", Desc: "From display name"},

	{Name: "site_name", Default: "EventNet", Desc: "Site name used in email templates"},
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for links in emails"},

	// Registration flow settings
	{Name: "otp_expiry", Default: "5m", Desc: "Verification code expiry (e.g., 5m, 10m)"},
	{Name: "min_password_len", Default: 6, Desc: "Minimum accepted password length"},
	{Name: "stale_registration_ttl", Default: "24h", Desc: "Age after which unverified accounts are reported"},

	// Abuse protection
	{Name: "auth_rate_limit", Default: 20, Desc: "Register/login requests per window per client IP"},
	{Name: "auth_rate_window", Default: "1m", Desc: "Rate limit window"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, EVENTNET_* for app), and
// command-line flags, merging with precedence: flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "EVENTNET", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey: appValues.String("csrf_key"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		SiteName: appValues.String("site_name"),
		BaseURL:  appValues.String("base_url"),

		OTPExpiry:            appValues.Duration("otp_expiry", 5*time.Minute),
		MinPasswordLen:       appValues.Int("min_password_len"),
		StaleRegistrationTTL: appValues.Duration("stale_registration_ttl", 24*time.Hour),

		AuthRateLimit:  appValues.Int("auth_rate_limit"),
		AuthRateWindow: appValues.Duration("auth_rate_window", time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// EventNet validates the MongoDB URI format and the flow settings to
// catch configuration errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}
	if appCfg.CSRFKey == "" {
		return fmt.Errorf("csrf_key must not be empty")
	}
	if appCfg.MailFrom == "" {
		return fmt.Errorf("mail_from must not be empty")
	}

	if appCfg.OTPExpiry <= 0 {
		return fmt.Errorf("otp_expiry must be positive, got %s", appCfg.OTPExpiry)
	}
	if appCfg.MinPasswordLen < 1 {
		return fmt.Errorf("min_password_len must be at least 1, got %d", appCfg.MinPasswordLen)
	}
	if appCfg.AuthRateLimit < 1 {
		return fmt.Errorf("auth_rate_limit must be at least 1, got %d", appCfg.AuthRateLimit)
	}

	return nil
}
