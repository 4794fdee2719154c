package vehicle

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sawari/sawari-admin-api/internal/domain/admin"
)

func TestRoutesForbiddenWithoutFeatureGrant(t *testing.T) {
	h := NewHandler(nil, nil)
	r := h.Routes(admin.RequireFeature(admin.FeatureVehicles))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}
