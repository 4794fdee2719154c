package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminAccountsUnauthorizedWithoutToken(t *testing.T) {
	h := NewHandler(NewService(newFakeDirectory()), NewTokenService("test-secret", 0))
	r := h.Routes()

	req := httptest.NewRequest(http.MethodGet, "/admin-accounts/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequireFeatureForbiddenWithoutViewer(t *testing.T) {
	mw := RequireFeature(FeatureAdminManagement)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}
