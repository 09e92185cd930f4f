package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/api/handlers"
	jwtMiddleware "toolhub/internal/api/middleware"
	"toolhub/internal/config"
	"toolhub/internal/repository"
)

// SetupRoutes registers every route. Mutating routes require a bearer
// token, except PUT /user/:email which is where tokens are issued.
func SetupRoutes(e *echo.Echo, db repository.Store, cfg *config.Config) {
	e.GET("/", root)
	e.GET("/health", healthCheck)

	auth := []echo.MiddlewareFunc{
		jwtMiddleware.Verifier(cfg.JWTKey),
		jwtMiddleware.ExtractEmailFromJWT(),
	}

	toolHandler := handlers.NewToolHandler(db)
	e.GET("/tools", toolHandler.GetTools)
	e.GET("/tools/:id", toolHandler.GetTool)
	e.POST("/tools", toolHandler.CreateTool, auth...)
	e.DELETE("/tools/:id", toolHandler.DeleteTool, auth...)

	orderHandler := handlers.NewOrderHandler(db)
	e.POST("/orders", orderHandler.CreateOrder, auth...)
	e.GET("/orders", orderHandler.GetOrders)
	e.GET("/allOrders", orderHandler.GetAllOrders)

	reviewHandler := handlers.NewReviewHandler(db)
	e.POST("/reviews", reviewHandler.CreateReview, auth...)
	e.GET("/reviews", reviewHandler.GetReviews)

	wishHandler := handlers.NewWishHandler(db)
	e.POST("/wish", wishHandler.CreateWish, auth...)
	e.GET("/wishes", wishHandler.GetWishes)

	userHandler := handlers.NewUserHandler(db, cfg.JWTKey)
	e.GET("/users", userHandler.GetUsers)
	e.GET("/users/:email", userHandler.GetUser)
	e.PUT("/users/:email", userHandler.UpdateUser, auth...)
	e.DELETE("/users/:id", userHandler.DeleteUser, auth...)
	e.GET("/admin/:email", userHandler.GetAdmin)
	e.PUT("/user/admin/:email", userHandler.MakeAdmin, auth...)
	e.PUT("/user/:email", userHandler.SignIn)
}

func root(c echo.Context) error {
	return c.String(http.StatusOK, "Tools are cutting the server")
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
