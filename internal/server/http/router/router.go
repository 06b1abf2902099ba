package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/admart/backend/internal/server/http/handlers"
	"github.com/admart/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	advertiserHandler := handlers.NewAdvertiserHandler(facade)
	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	advertiser := engine.Group("/advertiser")
	advertiser.POST("/", advertiserHandler.Register)
	advertiserAuth := advertiser.Group("")
	advertiserAuth.Use(middleware.AuthRequired(facade))
	advertiserAuth.GET("/", advertiserHandler.Profile)

	auth := engine.Group("/user-auth")
	auth.POST("/", authHandler.Login)
	authRequired := auth.Group("")
	authRequired.Use(middleware.AuthRequired(facade))
	authRequired.DELETE("/", authHandler.Logout)

	order := engine.Group("/order")
	order.Use(middleware.AuthRequired(facade))
	order.GET("/", orderHandler.List)
	order.POST("/", orderHandler.Create)
	order.GET("/:id", orderHandler.Detail)
	order.PUT("/:id", orderHandler.Update)
	order.PATCH("/:id", orderHandler.Patch)
	order.DELETE("/:id", orderHandler.Delete)

	return engine
}
