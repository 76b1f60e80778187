package main

import (
	"github.com/gin-gonic/gin"
	"komoralink.backend/internal/interfaces/http/handlers"
	"komoralink.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	onboardingHandler *handlers.OnboardingHandler
	walletHandler     *handlers.WalletHandler
	catalogHandler    *handlers.CatalogHandler
	orderHandler      *handlers.OrderHandler
	analyticsHandler  *handlers.AnalyticsHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.PATCH("/me", d.authMiddleware, d.authHandler.UpdateMe)
		}

		// Onboarding wizard routes (public, session-scoped)
		onboarding := v1.Group("/onboarding/sessions")
		{
			onboarding.POST("", d.onboardingHandler.StartSession)
			onboarding.GET("/:sessionId", d.onboardingHandler.GetState)
			onboarding.PUT("/:sessionId/step", d.onboardingHandler.SetStep)
			onboarding.PUT("/:sessionId/account-type", d.onboardingHandler.SetAccountType)
			onboarding.PATCH("/:sessionId/personal", d.onboardingHandler.UpdatePersonal)
			onboarding.PATCH("/:sessionId/business", d.onboardingHandler.UpdateBusiness)
			onboarding.PUT("/:sessionId/images", d.onboardingHandler.SetImages)
			onboarding.PUT("/:sessionId/otp", d.onboardingHandler.SetOTP)
			onboarding.POST("/:sessionId/otp/request", d.onboardingHandler.RequestOTP)
			onboarding.POST("/:sessionId/reset", d.onboardingHandler.Reset)
			onboarding.POST("/:sessionId/submit", middleware.IdempotencyMiddleware(), d.onboardingHandler.Submit)
		}

		// Wallet routes (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("/totals", d.walletHandler.GetTotals)
			wallet.GET("/transactions", d.walletHandler.ListTransactions)
		}

		// Business-scoped routes (protected)
		businesses := v1.Group("/businesses")
		businesses.Use(d.authMiddleware)
		{
			businesses.GET("/:businessId/products", d.catalogHandler.ListProducts)
			businesses.GET("/:businessId/orders", d.orderHandler.ListOrders)
			businesses.GET("/:businessId/dashboard", d.analyticsHandler.GetDashboard)
		}

		// Single-resource reads (protected)
		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.GET("/:id", d.catalogHandler.GetProduct)
		}
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.GET("/:id", d.orderHandler.GetOrder)
		}

		// Analytics routes (protected)
		analytics := v1.Group("/analytics")
		analytics.Use(d.authMiddleware)
		{
			analytics.GET("/revenue-chart", d.analyticsHandler.GetRevenueChart)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/onboarding/submissions", d.adminHandler.ListSubmissions)
			admin.GET("/onboarding/submissions/:id", d.adminHandler.GetSubmission)
		}
	}
}
