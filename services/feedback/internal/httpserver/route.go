package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	FeedbackHandler *FeedbackHTTP
}

// The feedback form is public: submission does not require a login.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	feedback := e.Group("/feedback")

	feedback.GET("", d.FeedbackHandler.List)
	feedback.POST("", d.FeedbackHandler.Submit)
}
