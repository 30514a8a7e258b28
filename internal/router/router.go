package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"noticeboard/internal/config"
	"noticeboard/internal/handler"
	"noticeboard/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	adminRepo repository.AdminRepository,
	authHandler *handler.AuthHandler,
	announcementHandler *handler.AnnouncementHandler,
	eventHandler *handler.EventHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/setup", authHandler.Setup)

	api.GET("/announcements", announcementHandler.List)
	api.GET("/announcements/:id", announcementHandler.Get)

	api.GET("/events", eventHandler.List)
	api.GET("/events/date/:date", eventHandler.ListByDate)

	// Mutating routes require a valid token whose admin still exists.
	secured := api.Group("", JWTGate(cfg.JWTSecret), AdminIdentity(adminRepo))

	secured.POST("/announcements", announcementHandler.Create)
	secured.PUT("/announcements/:id", announcementHandler.Update)
	secured.DELETE("/announcements/:id", announcementHandler.Delete)

	secured.POST("/events", eventHandler.Create)
	secured.PUT("/events/:id", eventHandler.Update)
	secured.DELETE("/events/:id", eventHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
