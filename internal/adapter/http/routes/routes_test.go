package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hlc_marketplace/internal/adapter/http/handlers"
	"hlc_marketplace/internal/adapter/http/handlers/mocks"
	"hlc_marketplace/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPromotionPaymentUseCase(ctrl)
	router := NewRouter(handlers.NewPromotionPaymentHandler(uc))

	uc.EXPECT().ListTiers(gomock.Any()).Return(nil, nil)
	uc.EXPECT().VerifyAndActivate(gomock.Any(), "HLC-PROP-9F3A").Return(entities.VerificationOutcome{Reference: "HLC-PROP-9F3A"}, nil)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK},
		{http.MethodGet, "/v1/promotions/tiers", http.StatusOK},
		{http.MethodGet, "/v1/payments/verify/HLC-PROP-9F3A", http.StatusOK},
		{http.MethodGet, "/v1/unknown", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestPort(t *testing.T) {
	t.Setenv("PORT", "")
	if port() != defaultPort {
		t.Fatalf("expected default port")
	}
	t.Setenv("PORT", "9090")
	if port() != 9090 {
		t.Fatalf("expected 9090")
	}
}
