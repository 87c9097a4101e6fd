package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:             "mongodb://localhost:27017",
		MongoDatabase:        "eventnet",
		SessionKey:           "0123456789abcdef0123456789abcdef",
		SessionName:          "eventnet_session",
		CSRFKey:              "0123456789abcdef0123456789abcdef",
		MailFrom:             "noreply@eventnet.example",
		MailFromName:         "EventNet",
		SiteName:             "EventNet",
		OTPExpiry:            5 * time.Minute,
		MinPasswordLen:       6,
		StaleRegistrationTTL: 24 * time.Hour,
		AuthRateLimit:        20,
		AuthRateWindow:       time.Minute,
	}
}

func TestValidateConfig_OK(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"bad mongo uri", func(c *AppConfig) { c.MongoURI = "not-a-uri" }},
		{"empty session key", func(c *AppConfig) { c.SessionKey = "" }},
		{"empty csrf key", func(c *AppConfig) { c.CSRFKey = "" }},
		{"empty mail from", func(c *AppConfig) { c.MailFrom = "" }},
		{"zero otp expiry", func(c *AppConfig) { c.OTPExpiry = 0 }},
		{"zero password length", func(c *AppConfig) { c.MinPasswordLen = 0 }},
		{"zero rate limit", func(c *AppConfig) { c.AuthRateLimit = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validAppConfig()
			tc.mutate(&cfg)
			if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}
