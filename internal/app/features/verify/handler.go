// internal/app/features/verify/handler.go
package verify

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventnethq/eventnet/internal/app/flow"
	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"github.com/eventnethq/eventnet/internal/app/system/inputval"
	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/app/system/timeouts"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"go.uber.org/zap"
)

// Verifier is the slice of the flow service this handler needs.
type Verifier interface {
	VerifyOTP(ctx context.Context, email, code string) (models.PublicUser, error)
}

type Handler struct {
	Flow   Verifier
	ErrLog *httpjson.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(svc Verifier, logger *zap.Logger) *Handler {
	return &Handler{
		Flow:   svc,
		ErrLog: httpjson.NewErrorLogger(logger),
		Log:    logger,
	}
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type verifyResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// HandleVerify handles POST /verify-otp.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "verify-otp: decode", err, "Invalid request body.")
		return
	}

	email := normalize.Email(req.Email)
	code := normalize.OTPDigits(req.OTP)

	switch {
	case !inputval.IsValidEmail(email):
		httpjson.Message(w, http.StatusBadRequest, "A valid email address is required.")
		return
	case code == "":
		httpjson.Message(w, http.StatusBadRequest, "Verification code is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Flow.VerifyOTP(ctx, email, code)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrOTPInvalid):
			httpjson.Message(w, http.StatusBadRequest, "Invalid or expired verification code.")
		case errors.Is(err, flow.ErrOTPAttempts):
			httpjson.Message(w, http.StatusTooManyRequests, "Too many attempts. Please register again to receive a new code.")
		case errors.Is(err, flow.ErrUserNotFound):
			httpjson.Message(w, http.StatusNotFound, "User not found.")
		default:
			h.ErrLog.LogServerError(w, r, "verify-otp", err, "Something went wrong. Please try again later.")
		}
		return
	}

	httpjson.Write(w, http.StatusOK, verifyResponse{
		Message: "Email verified successfully.",
		User:    user,
	})
}
