// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	otpstore "github.com/eventnethq/eventnet/internal/app/store/otp"
	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"go.uber.org/zap"
)

// OTPCleanupJob creates a job that removes expired verification codes.
// This is a backup for when MongoDB's TTL index cleanup is delayed.
func OTPCleanupJob(otps *otpstore.Store, logger *zap.Logger) Job {
	return Job{
		Name:     "otp-cleanup",
		Interval: 15 * time.Minute,
		Run: func(ctx context.Context) error {
			count, err := otps.DeleteExpired(ctx)
			if err != nil {
				return err
			}
			if count > 0 {
				logger.Debug("deleted expired verification codes", zap.Int64("count", count))
			}
			return nil
		},
	}
}

// StaleRegistrationsJob creates a job that reports unverified accounts
// older than ttl with no live verification code. These are registrations
// abandoned mid-flow (for example when the OTP email never arrived);
// the job surfaces them for operator attention rather than deleting.
func StaleRegistrationsJob(users *userstore.Store, otps *otpstore.Store, logger *zap.Logger, ttl time.Duration) Job {
	return Job{
		Name:     "stale-registrations",
		Interval: 1 * time.Hour,
		Run: func(ctx context.Context) error {
			cutoff := time.Now().UTC().Add(-ttl)
			stale, err := users.ListStaleUnverified(ctx, cutoff)
			if err != nil {
				return err
			}
			for _, u := range stale {
				live, err := otps.HasLive(ctx, u.Email)
				if err != nil {
					return err
				}
				if live {
					continue
				}
				logger.Warn("stale unverified registration",
					zap.String("email", u.Email),
					zap.Time("created_at", u.CreatedAt))
			}
			return nil
		},
	}
}
