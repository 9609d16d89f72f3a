package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/garvbarthwal/kisaan/internal/server/http/handlers"
	"github.com/garvbarthwal/kisaan/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))
	auth.POST("/products", productHandler.Create)
	auth.GET("/farmer/products", productHandler.Mine)
	auth.POST("/orders", orderHandler.Place)
	auth.GET("/orders", orderHandler.List)
	auth.GET("/orders/:id", orderHandler.Get)
	auth.PUT("/orders/:id", orderHandler.UpdateStatus)
	auth.PUT("/orders/:id/cancel", orderHandler.Cancel)
	auth.PUT("/orders/:id/finalize-delivery", orderHandler.FinalizeDelivery)
	auth.GET("/notifications", notificationHandler.List)

	return engine
}
