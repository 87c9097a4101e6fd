package csrftoken_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventnethq/eventnet/internal/app/features/csrftoken"
	"github.com/eventnethq/eventnet/internal/app/system/csrfguard"
	"github.com/eventnethq/eventnet/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleToken_InsideMiddleware(t *testing.T) {
	h := csrftoken.NewHandler(zap.NewNop())
	guard := csrfguard.Middleware("0123456789abcdef0123456789abcdef", false, zap.NewNop())
	srv := guard(http.HandlerFunc(h.HandleToken))

	req := httptest.NewRequest(http.MethodGet, "/csrf-token", nil)
	rec := testutil.NewRecorder()
	srv.ServeHTTP(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "csrfToken")
}

func TestHandleToken_OutsideMiddleware(t *testing.T) {
	h := csrftoken.NewHandler(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/csrf-token", nil)
	rec := testutil.NewRecorder()
	h.HandleToken(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
}
