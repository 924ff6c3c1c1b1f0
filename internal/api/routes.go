package api

import (
	"github.com/gin-gonic/gin"

	"boardscout/server/internal/auth"
)

func SetupRoutes(router *gin.Engine, handler *Handler, authHandler *AuthHandler, issuer *auth.TokenIssuer) {
	api := router.Group("/api")
	{
		api.GET("/health", handler.HealthCheck)
		api.GET("/markets", handler.GetMarkets)

		api.GET("/billboards", handler.GetBillboards)
		api.GET("/billboards/:identifier", handler.GetBillboardDetail)
		api.GET("/billboards/:identifier/nearby", handler.GetNearbyBillboards)

		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(auth.RequireAuth(issuer))
		{
			protected.POST("/billboards", handler.AddBillboard)
			protected.POST("/billboards/import", handler.ImportBillboards)
		}
	}
}
