package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetloaf/bakeshop/pkg/authclient"
	middleware "github.com/sweetloaf/bakeshop/pkg/middleware/auth"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	JWTSecret      []byte
	AuthClient     *authclient.Client
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := middleware.NewAutoRefreshMiddleware(d.JWTSecret, d.AuthClient)

	catalog := e.Group("/catalog")

	catalog.GET("/products", d.CatalogHandler.GetProducts)
	catalog.GET("/products/:id", d.CatalogHandler.GetProduct)
	catalog.GET("/search", d.CatalogHandler.SearchProducts)

	admin := catalog.Group("")
	admin.Use(authMW.RequireAdmin)

	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)
}
