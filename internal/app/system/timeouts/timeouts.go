// internal/app/system/timeouts/timeouts.go
//
// Package timeouts provides centralized timeout values for handler
// operations. Handlers wrap request contexts with these budgets before
// touching Mongo or the SMTP relay, so one slow dependency cannot pin a
// request forever.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes (user lookup, invite lookup)
//   - Medium: multi-step flows (the register/verify sequences) and list reads
//   - Send: outbound email delivery
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	send   = 15 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads and writes.
func Short() time.Duration { return short }

// Medium returns the timeout for multi-step flows and list queries.
func Medium() time.Duration { return medium }

// Send returns the timeout for outbound email delivery.
func Send() time.Duration { return send }
