package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"komoralink.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:       &handlers.AuthHandler{},
		onboardingHandler: &handlers.OnboardingHandler{},
		walletHandler:     &handlers.WalletHandler{},
		catalogHandler:    &handlers.CatalogHandler{},
		orderHandler:      &handlers.OrderHandler{},
		analyticsHandler:  &handlers.AnalyticsHandler{},
		adminHandler:      &handlers.AdminHandler{},
		authMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	routes := r.Routes()
	if len(routes) < 20 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"GET", "/api/v1/auth/me"},
		{"POST", "/api/v1/onboarding/sessions"},
		{"GET", "/api/v1/onboarding/sessions/:sessionId"},
		{"PUT", "/api/v1/onboarding/sessions/:sessionId/account-type"},
		{"POST", "/api/v1/onboarding/sessions/:sessionId/submit"},
		{"GET", "/api/v1/wallet/totals"},
		{"GET", "/api/v1/wallet/transactions"},
		{"GET", "/api/v1/businesses/:businessId/dashboard"},
		{"GET", "/api/v1/analytics/revenue-chart"},
		{"GET", "/api/v1/admin/onboarding/submissions"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       &handlers.AuthHandler{},
		onboardingHandler: &handlers.OnboardingHandler{},
		walletHandler:     &handlers.WalletHandler{},
		catalogHandler:    &handlers.CatalogHandler{},
		orderHandler:      &handlers.OrderHandler{},
		analyticsHandler:  &handlers.AnalyticsHandler{},
		adminHandler:      &handlers.AdminHandler{},
		authMiddleware:    func(c *gin.Context) { c.Next() },
	})

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
