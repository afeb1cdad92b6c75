package main

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
)

// SetupRouter wires the HTTP surface. Reads on the catalog are public;
// mutations require a bearer token issued by the login endpoint.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.Get)
	}

	protected := api.Group("/books")
	protected.Use(middleware.Auth(c.JWTManager))
	{
		protected.POST("", c.BookHandler.Create)
		protected.PUT("/:id", c.BookHandler.Update)
		protected.DELETE("/:id", c.BookHandler.Delete)
	}
}
