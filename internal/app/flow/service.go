// internal/app/flow/service.go
package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	invitestore "github.com/eventnethq/eventnet/internal/app/store/invites"
	otpstore "github.com/eventnethq/eventnet/internal/app/store/otp"
	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"github.com/eventnethq/eventnet/internal/app/system/normalize"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is the slice of the user store the flows need.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
}

// InviteLedger looks up and consumes invite codes.
type InviteLedger interface {
	FindByCodeAndEvent(ctx context.Context, code string, eventID primitive.ObjectID) (*models.InviteCode, error)
	ConsumeForEmail(ctx context.Context, email string, usedBy primitive.ObjectID) (bool, error)
}

// OTPIssuer issues and consumes one-time verification codes.
type OTPIssuer interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, code string) error
}

// Sender delivers the OTP email.
type Sender interface {
	SendOTP(ctx context.Context, to, name, code string) error
}

// Outcome tags the three disjoint results of a successful Register call.
type Outcome int

const (
	// OutcomeRegistered: a new unverified account was created and an OTP sent.
	OutcomeRegistered Outcome = iota
	// OutcomeResent: the account already existed unverified; the password
	// was refreshed and a new OTP sent.
	OutcomeResent
	// OutcomeAlreadyVerified: the account is verified and the password
	// matched, so registration degrades to a login.
	OutcomeAlreadyVerified
)

// RegisterInput carries the fields of a registration request, already
// syntactically validated by the handler.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Code     string
	EventID  primitive.ObjectID
	Phone    string
	LinkedIn string
	GitHub   string
}

// RegisterResult pairs the outcome tag with the client-safe user.
type RegisterResult struct {
	Outcome Outcome
	User    models.PublicUser
}

// Service implements the registration, verification, and login state
// machine over narrow store interfaces.
type Service struct {
	users   CredentialStore
	invites InviteLedger
	otps    OTPIssuer
	sender  Sender
	log     *zap.Logger
}

// New creates a Service.
func New(users CredentialStore, invites InviteLedger, otps OTPIssuer, sender Sender, logger *zap.Logger) *Service {
	return &Service{
		users:   users,
		invites: invites,
		otps:    otps,
		sender:  sender,
		log:     logger,
	}
}

// Register runs the invite-gated registration flow. The invite gate runs
// before any account lookup so an attacker without a valid code learns
// nothing about existing accounts.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	email := normalize.Email(in.Email)
	code := normalize.Code(in.Code)

	inv, err := s.invites.FindByCodeAndEvent(ctx, code, in.EventID)
	if err != nil {
		if errors.Is(err, invitestore.ErrNotFound) {
			return RegisterResult{}, ErrInviteInvalid
		}
		return RegisterResult{}, fmt.Errorf("look up invite: %w", err)
	}

	if inv.Used {
		s.log.Info("registration with used invite",
			zap.String("code", inv.Code),
			zap.Bool("same_email", strings.EqualFold(inv.Email, email)))
		return RegisterResult{}, ErrInviteUsed
	}

	if !strings.EqualFold(inv.Email, email) {
		return RegisterResult{}, ErrEmailMismatch
	}

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.Verified:
		return s.loginEquivalent(existing, in.Password)
	case err == nil:
		return s.resendPending(ctx, existing, in.Password)
	case errors.Is(err, userstore.ErrNotFound):
		return s.createAccount(ctx, in, email)
	default:
		return RegisterResult{}, fmt.Errorf("look up user: %w", err)
	}
}

// loginEquivalent handles re-registration by an already verified user.
func (s *Service) loginEquivalent(user *models.User, password string) (RegisterResult, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return RegisterResult{}, ErrIncorrectPassword
	}
	return RegisterResult{Outcome: OutcomeAlreadyVerified, User: user.Public()}, nil
}

// resendPending refreshes the password and OTP for an account that never
// completed verification. Idempotent: no second user record is created.
func (s *Service) resendPending(ctx context.Context, user *models.User, password string) (RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return RegisterResult{}, fmt.Errorf("update password: %w", err)
	}

	if err := s.issueAndSend(ctx, user.Email, user.Name); err != nil {
		return RegisterResult{}, err
	}

	s.log.Info("verification code re-sent", zap.String("email", user.Email))
	return RegisterResult{Outcome: OutcomeResent, User: user.Public()}, nil
}

func (s *Service) createAccount(ctx context.Context, in RegisterInput, email string) (RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, models.User{
		Name:         normalize.Name(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		EventID:      in.EventID,
		Phone:        in.Phone,
		LinkedIn:     in.LinkedIn,
		GitHub:       in.GitHub,
	})
	if err != nil {
		// A racing registration hit the unique email index first.
		return RegisterResult{}, fmt.Errorf("create user: %w", err)
	}

	if err := s.issueAndSend(ctx, created.Email, created.Name); err != nil {
		// The account stays; the resend path recovers on retry.
		return RegisterResult{}, err
	}

	s.log.Info("user registered", zap.String("email", created.Email))
	return RegisterResult{Outcome: OutcomeRegistered, User: created.Public()}, nil
}

func (s *Service) issueAndSend(ctx context.Context, email, name string) error {
	code, err := s.otps.Issue(ctx, email)
	if err != nil {
		return fmt.Errorf("issue verification code: %w", err)
	}
	if err := s.sender.SendOTP(ctx, email, name, code); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

// VerifyOTP consumes a verification code and flips the account to
// verified. The invite consumption is best effort: a missing unused
// invite is logged, not fatal, so operator-seeded accounts still verify.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (models.PublicUser, error) {
	email = normalize.Email(email)

	if err := s.otps.Consume(ctx, email, normalize.OTPDigits(code)); err != nil {
		switch {
		case errors.Is(err, otpstore.ErrTooManyAttempts):
			return models.PublicUser{}, ErrOTPAttempts
		case errors.Is(err, otpstore.ErrNotFound), errors.Is(err, otpstore.ErrInvalidCode):
			return models.PublicUser{}, ErrOTPInvalid
		default:
			return models.PublicUser{}, fmt.Errorf("consume verification code: %w", err)
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.PublicUser{}, ErrUserNotFound
		}
		return models.PublicUser{}, fmt.Errorf("look up user: %w", err)
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return models.PublicUser{}, fmt.Errorf("mark user verified: %w", err)
	}
	user.Verified = true

	consumed, err := s.invites.ConsumeForEmail(ctx, email, user.ID)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("consume invite: %w", err)
	}
	if !consumed {
		s.log.Warn("no unused invite found during verification",
			zap.String("email", email))
	}

	s.log.Info("user verified", zap.String("email", email))
	return user.Public(), nil
}

// Login checks credentials. Unknown email and wrong password return the
// same error so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (models.PublicUser, error) {
	user, err := s.users.GetByEmail(ctx, normalize.Email(email))
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.PublicUser{}, ErrInvalidCredentials
		}
		return models.PublicUser{}, fmt.Errorf("look up user: %w", err)
	}

	if !user.Verified {
		return models.PublicUser{}, ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.PublicUser{}, ErrInvalidCredentials
	}

	return user.Public(), nil
}
