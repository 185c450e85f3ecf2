package handler

import (
	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, profileHandler *ProfileHandler, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler, balanceHandler *BalanceHandler, reportHandler *ReportHandler, storageHandler *StorageHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Logout needs the token so it can be revoked
	logout := api.Group("/auth")
	logout.Use(authMiddleware.Authenticate())
	logout.POST("/logout", authHandler.Logout)

	// Profile routes (protected)
	profile := api.Group("/profile")
	profile.Use(authMiddleware.Authenticate())
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)

	// Account-scoped routes (protected, rate limited)
	accounts := api.Group("/accounts/:accountId")
	accounts.Use(authMiddleware.Authenticate())
	if rateLimiter != nil {
		accounts.Use(middleware.RateLimitMiddleware(rateLimiter))
	}

	accounts.GET("/categories", categoryHandler.ListCategories)

	accounts.POST("/transactions", transactionHandler.CreateTransaction)
	accounts.GET("/transactions", transactionHandler.ListTransactions)

	accounts.GET("/balance", balanceHandler.GetBalance)

	accounts.GET("/reports", reportHandler.GetReport)

	accounts.POST("/storage/references", storageHandler.SaveReference)
	accounts.POST("/storage/presign", storageHandler.PresignUpload)

	// WebSocket endpoint (token via query parameter)
	e.GET("/ws", wsHandler.HandleWS)
}
