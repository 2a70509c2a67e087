package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetloaf/bakeshop/pkg/middleware/csrf"
	"github.com/sweetloaf/bakeshop/services/gateway/internal/middleware"
)

type Deps struct {
	AuthURL     string
	CatalogURL  string
	CartURL     string
	FeedbackURL string

	CSRFConfig csrf.Config
	JWTSecret  []byte
}

func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, m := range middleware.Common() {
		e.Use(m)
	}
	e.Use(csrf.Middleware(d.CSRFConfig))

	authProxy, err := newProxy(d.AuthURL, "/api/v1/auth")
	if err != nil {
		return err
	}

	catalogProxy, err := newProxy(d.CatalogURL, "/api/v1")
	if err != nil {
		return err
	}

	cartProxy, err := newProxy(d.CartURL, "/api/v1")
	if err != nil {
		return err
	}

	feedbackProxy, err := newProxy(d.FeedbackURL, "/api/v1")
	if err != nil {
		return err
	}

	e.Any("/api/v1/auth/*", authProxy)

	// Browsing and feedback are anonymous surfaces.
	e.Match([]string{http.MethodGet}, "/api/v1/catalog", catalogProxy)
	e.Match([]string{http.MethodGet}, "/api/v1/catalog/*", catalogProxy)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/api/v1/feedback", feedbackProxy)

	api := e.Group("/api/v1")
	api.Use(middleware.JWT(d.JWTSecret))

	admin := []string{"admin"}
	api.Match([]string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		"/catalog", catalogProxy, middleware.RequireRole(admin))
	api.Match([]string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		"/catalog/*", catalogProxy, middleware.RequireRole(admin))

	api.Any("/cart", cartProxy)
	api.Any("/cart/*", cartProxy)

	return nil
}
