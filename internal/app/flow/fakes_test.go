package flow_test

import (
	"context"
	"fmt"
	"time"

	invitestore "github.com/eventnethq/eventnet/internal/app/store/invites"
	otpstore "github.com/eventnethq/eventnet/internal/app/store/otp"
	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"github.com/eventnethq/eventnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the flow interfaces. They honor the same sentinel
// errors as the Mongo stores so the service's error mapping is exercised.

type fakeUsers struct {
	byEmail   map[string]*models.User
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]*models.User)}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userstore.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return models.User{}, userstore.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := u
	f.byEmail[u.Email] = &cp
	return u, nil
}

func (f *fakeUsers) UpdatePasswordHash(_ context.Context, id primitive.ObjectID, hash string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return userstore.ErrNotFound
}

func (f *fakeUsers) MarkVerified(_ context.Context, id primitive.ObjectID) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Verified = true
			return nil
		}
	}
	return userstore.ErrNotFound
}

func (f *fakeUsers) count() int { return len(f.byEmail) }

type fakeInvites struct {
	invites []*models.InviteCode
}

func (f *fakeInvites) add(code, email string, eventID primitive.ObjectID, used bool) *models.InviteCode {
	inv := &models.InviteCode{
		ID:      primitive.NewObjectID(),
		Code:    code,
		Email:   email,
		EventID: eventID,
		Used:    used,
	}
	f.invites = append(f.invites, inv)
	return inv
}

func (f *fakeInvites) FindByCodeAndEvent(_ context.Context, code string, eventID primitive.ObjectID) (*models.InviteCode, error) {
	for _, inv := range f.invites {
		if inv.Code == code && inv.EventID == eventID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, invitestore.ErrNotFound
}

func (f *fakeInvites) ConsumeForEmail(_ context.Context, email string, usedBy primitive.ObjectID) (bool, error) {
	for _, inv := range f.invites {
		if inv.Email == email && !inv.Used {
			inv.Used = true
			inv.UsedBy = &usedBy
			return true, nil
		}
	}
	return false, nil
}

type fakeOTP struct {
	code     string
	attempts int
	email    string
	expired  bool
}

type fakeOTPs struct {
	live    map[string]*fakeOTP
	issued  int
	nextSeq int
}

func newFakeOTPs() *fakeOTPs {
	return &fakeOTPs{live: make(map[string]*fakeOTP)}
}

func (f *fakeOTPs) Issue(_ context.Context, email string) (string, error) {
	f.issued++
	f.nextSeq++
	code := fmt.Sprintf("%06d", f.nextSeq)
	f.live[email] = &fakeOTP{code: code, email: email}
	return code, nil
}

func (f *fakeOTPs) Consume(_ context.Context, email, code string) error {
	rec, ok := f.live[email]
	if !ok || rec.expired {
		return otpstore.ErrNotFound
	}
	if rec.attempts >= otpstore.MaxAttempts {
		return otpstore.ErrTooManyAttempts
	}
	if rec.code != code {
		rec.attempts++
		return otpstore.ErrInvalidCode
	}
	delete(f.live, email)
	return nil
}

type sentMail struct {
	To   string
	Name string
	Code string
}

type fakeSender struct {
	sent    []sentMail
	failErr error
}

func (f *fakeSender) SendOTP(_ context.Context, to, name, code string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.sent = append(f.sent, sentMail{To: to, Name: name, Code: code})
	return nil
}

func (f *fakeSender) lastCode() string {
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1].Code
}
