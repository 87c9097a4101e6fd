package otpstore_test

import (
	"errors"
	"testing"
	"time"

	otpstore "github.com/eventnethq/eventnet/internal/app/store/otp"
	"github.com/eventnethq/eventnet/internal/testutil"
)

func TestStore_IssueAndConsume(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	code, err := store.Issue(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(code) != otpstore.CodeLength {
		t.Fatalf("code length: got %d, want %d", len(code), otpstore.CodeLength)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit %q in code %q", r, code)
		}
	}

	if err := store.Consume(ctx, "guest@example.com", code); err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	// Consumed codes are single use.
	err = store.Consume(ctx, "guest@example.com", code)
	if !errors.Is(err, otpstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after consume, got %v", err)
	}
}

func TestStore_Consume_WrongCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	code, err := store.Issue(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	err = store.Consume(ctx, "guest@example.com", wrong)
	if !errors.Is(err, otpstore.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	// The right code still works after a failed attempt.
	if err := store.Consume(ctx, "guest@example.com", code); err != nil {
		t.Fatalf("Consume with correct code failed: %v", err)
	}
}

func TestStore_Consume_AttemptLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	code, err := store.Issue(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 0; i < otpstore.MaxAttempts; i++ {
		err := store.Consume(ctx, "guest@example.com", wrong)
		if !errors.Is(err, otpstore.ErrInvalidCode) {
			t.Fatalf("attempt %d: expected ErrInvalidCode, got %v", i+1, err)
		}
	}

	// Even the correct code is refused once the limit is hit.
	err = store.Consume(ctx, "guest@example.com", code)
	if !errors.Is(err, otpstore.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestStore_Consume_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateOTP(ctx, "guest@example.com", "123456", time.Now().UTC().Add(-time.Minute))

	err := store.Consume(ctx, "guest@example.com", "123456")
	if !errors.Is(err, otpstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired code, got %v", err)
	}
}

func TestStore_Issue_ReplacesPrior(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Issue(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("first Issue failed: %v", err)
	}
	second, err := store.Issue(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("second Issue failed: %v", err)
	}

	if first != second {
		// The first code must be dead once the second is issued.
		err = store.Consume(ctx, "guest@example.com", first)
		if err == nil {
			t.Fatal("expected stale code to be rejected")
		}
	}

	if err := store.Consume(ctx, "guest@example.com", second); err != nil {
		t.Fatalf("Consume of current code failed: %v", err)
	}
}

func TestStore_DeleteExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateOTP(ctx, "old@example.com", "111111", time.Now().UTC().Add(-time.Hour))
	fixtures.CreateOTP(ctx, "live@example.com", "222222", time.Now().UTC().Add(time.Hour))

	deleted, err := store.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}

	live, err := store.HasLive(ctx, "live@example.com")
	if err != nil {
		t.Fatalf("HasLive failed: %v", err)
	}
	if !live {
		t.Error("live code should survive DeleteExpired")
	}
}

func TestStore_HasLive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := otpstore.New(db, otpstore.DefaultExpiry)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	live, err := store.HasLive(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("HasLive failed: %v", err)
	}
	if live {
		t.Error("no code issued yet")
	}

	if _, err := store.Issue(ctx, "guest@example.com"); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	live, err = store.HasLive(ctx, "guest@example.com")
	if err != nil {
		t.Fatalf("HasLive failed: %v", err)
	}
	if !live {
		t.Error("expected a live code after Issue")
	}
}
