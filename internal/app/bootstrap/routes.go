// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	csrftokenfeature "github.com/eventnethq/eventnet/internal/app/features/csrftoken"
	eventsfeature "github.com/eventnethq/eventnet/internal/app/features/events"
	healthfeature "github.com/eventnethq/eventnet/internal/app/features/health"
	loginfeature "github.com/eventnethq/eventnet/internal/app/features/login"
	logoutfeature "github.com/eventnethq/eventnet/internal/app/features/logout"
	profilefeature "github.com/eventnethq/eventnet/internal/app/features/profile"
	registerfeature "github.com/eventnethq/eventnet/internal/app/features/register"
	verifyfeature "github.com/eventnethq/eventnet/internal/app/features/verify"
	"github.com/eventnethq/eventnet/internal/app/flow"
	eventstore "github.com/eventnethq/eventnet/internal/app/store/events"
	invitestore "github.com/eventnethq/eventnet/internal/app/store/invites"
	otpstore "github.com/eventnethq/eventnet/internal/app/store/otp"
	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"github.com/eventnethq/eventnet/internal/app/system/auth"
	"github.com/eventnethq/eventnet/internal/app/system/csrfguard"
	"github.com/eventnethq/eventnet/internal/app/system/mailer"
	"github.com/eventnethq/eventnet/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. EventNet wires the stores into
// the flow service, applies session middleware globally, and puts every
// state-mutating route behind the CSRF guard. /verify-otp stays outside
// the guard: the OTP itself proves the request is deliberate, and the
// client verifying may not have fetched a token yet.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	otpSender, err := mailer.New(mailer.Config{
		Host:      appCfg.MailSMTPHost,
		Port:      appCfg.MailSMTPPort,
		Username:  appCfg.MailSMTPUser,
		Password:  appCfg.MailSMTPPass,
		From:      appCfg.MailFrom,
		FromName:  appCfg.MailFromName,
		SiteName:  appCfg.SiteName,
		OTPExpiry: appCfg.OTPExpiry,
	}, logger)
	if err != nil {
		logger.Error("mailer init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase
	users := userstore.New(db)
	invites := invitestore.New(db)
	otps := otpstore.New(db, appCfg.OTPExpiry)
	events := eventstore.New(db)

	svc := flow.New(users, invites, otps, otpSender, logger)

	authLimiter := ratelimit.New(appCfg.AuthRateLimit, appCfg.AuthRateWindow)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	// Public reads
	r.Mount("/events", eventsfeature.Routes(eventsfeature.NewHandler(events, users, logger)))

	// OTP verification: rate limited but not CSRF guarded.
	r.With(authLimiter.Middleware).
		Mount("/verify-otp", verifyfeature.Routes(verifyfeature.NewHandler(svc, logger)))

	// State-mutating routes behind the CSRF guard.
	guard := csrfguard.Middleware(appCfg.CSRFKey, secure, logger)
	r.Group(func(g chi.Router) {
		g.Use(guard)

		g.Mount("/csrf-token", csrftokenfeature.Routes(csrftokenfeature.NewHandler(logger)))

		g.With(authLimiter.Middleware).
			Mount("/register", registerfeature.Routes(registerfeature.NewHandler(svc, appCfg.MinPasswordLen, logger)))
		g.With(authLimiter.Middleware).
			Mount("/login", loginfeature.Routes(loginfeature.NewHandler(svc, sessionMgr, logger)))

		g.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, logger)))
		g.Mount("/profile", profilefeature.Routes(profilefeature.NewHandler(users, logger)))
	})

	return r, nil
}
