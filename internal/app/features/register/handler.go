// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventnethq/eventnet/internal/app/flow"
	"github.com/eventnethq/eventnet/internal/app/system/htmlsanitize"
	"github.com/eventnethq/eventnet/internal/app/system/httpjson"
	"github.com/eventnethq/eventnet/internal/app/system/inputval"
	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/app/system/timeouts"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Registrar is the slice of the flow service this handler needs.
type Registrar interface {
	Register(ctx context.Context, in flow.RegisterInput) (flow.RegisterResult, error)
}

type Handler struct {
	Flow           Registrar
	ErrLog         *httpjson.ErrorLogger
	Log            *zap.Logger
	MinPasswordLen int
}

func NewHandler(svc Registrar, minPasswordLen int, logger *zap.Logger) *Handler {
	return &Handler{
		Flow:           svc,
		ErrLog:         httpjson.NewErrorLogger(logger),
		Log:            logger,
		MinPasswordLen: minPasswordLen,
	}
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode"`
	EventID    string `json:"eventId"`
	Phone      string `json:"phone"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
}

type registerResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// HandleRegister handles POST /register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "register: decode", err, "Invalid request body.")
		return
	}

	name := normalize.Name(req.Name)
	email := normalize.Email(req.Email)
	code := normalize.Code(req.InviteCode)

	switch {
	case name == "":
		httpjson.Message(w, http.StatusBadRequest, "Name is required.")
		return
	case !inputval.IsValidEmail(email):
		httpjson.Message(w, http.StatusBadRequest, "A valid email address is required.")
		return
	case !inputval.IsValidPassword(req.Password, h.MinPasswordLen):
		httpjson.Message(w, http.StatusBadRequest, "Password does not meet the minimum length.")
		return
	case code == "":
		httpjson.Message(w, http.StatusBadRequest, "Invite code is required.")
		return
	case !inputval.IsValidObjectID(req.EventID):
		httpjson.Message(w, http.StatusBadRequest, "Invalid event id.")
		return
	}

	eventID, _ := primitive.ObjectIDFromHex(req.EventID)

	// Send() budget: this path may dispatch the OTP email.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Send())
	defer cancel()

	res, err := h.Flow.Register(ctx, flow.RegisterInput{
		Name:     name,
		Email:    email,
		Password: req.Password,
		Code:     code,
		EventID:  eventID,
		Phone:    htmlsanitize.Plain(req.Phone),
		LinkedIn: htmlsanitize.Plain(req.LinkedIn),
		GitHub:   htmlsanitize.Plain(req.GitHub),
	})
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrInviteInvalid):
			httpjson.Message(w, http.StatusForbidden, "Invalid invite code, email, or event.")
		case errors.Is(err, flow.ErrInviteUsed):
			httpjson.Message(w, http.StatusConflict, "This invite code has already been used.")
		case errors.Is(err, flow.ErrEmailMismatch):
			httpjson.Message(w, http.StatusForbidden, "This invite code was issued to a different email address.")
		case errors.Is(err, flow.ErrIncorrectPassword):
			httpjson.Message(w, http.StatusUnauthorized, "Incorrect password.")
		default:
			h.ErrLog.LogServerError(w, r, "register", err, "Something went wrong. Please try again later.")
		}
		return
	}

	switch res.Outcome {
	case flow.OutcomeRegistered:
		httpjson.Write(w, http.StatusCreated, registerResponse{
			Message: "Registration successful. A verification code has been sent to your email.",
			User:    res.User,
		})
	case flow.OutcomeResent:
		httpjson.Write(w, http.StatusOK, registerResponse{
			Message: "A new verification code has been sent to your email.",
			User:    res.User,
		})
	case flow.OutcomeAlreadyVerified:
		httpjson.Write(w, http.StatusOK, registerResponse{
			Message: "Account already verified. You are logged in.",
			User:    res.User,
		})
	default:
		h.ErrLog.LogServerError(w, r, "register: outcome", errors.New("unknown outcome"), "Something went wrong. Please try again later.")
	}
}
