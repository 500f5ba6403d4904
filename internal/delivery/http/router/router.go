// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"ecommerce/config"
	sharedmiddleware "ecommerce/internal/delivery/middleware"
	"ecommerce/internal/delivery/http/middleware"
	"ecommerce/internal/delivery/http/router/handler"
	"ecommerce/internal/domain/entity"
	"ecommerce/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	categoryMaxAge    = 10 * time.Second
	productListMaxAge = 20 * time.Second
)

// RouterParams holds the handlers and middleware that routes are built from.
type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsEnabled() {
		e.GET(r.cfg.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authenticated := r.authMiddleware.Authenticate
	adminOnly := []echo.MiddlewareFunc{authenticated, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	users := e.Group("/api/v1/users")
	{
		users.POST("", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.GET("", r.userHandler.ListUsers, adminOnly...)
		users.GET("/:id", r.userHandler.GetUser, adminOnly...)
	}

	r.registerCategories(e.Group("/api/v1/categories"), entity.CategoryOrderByName, adminOnly)
	r.registerCategories(e.Group("/api/v2/categories"), entity.CategoryOrderByID, adminOnly)

	products := e.Group("/api/v1/products")
	{
		products.GET("", r.productHandler.ListProducts, sharedmiddleware.CacheControl(productListMaxAge))
		products.GET("/paged", r.productHandler.ListPaged)
		products.GET("/searchProductByCategory/:categoryId", r.productHandler.ListByCategory)
		products.GET("/searchProductByNameDescription/:searchTerm", r.productHandler.Search)
		products.GET("/images/:key", r.productHandler.Image)
		products.GET("/:id", r.productHandler.GetProduct)
		products.GET("/:id/qrcode", r.productHandler.QRCode)

		products.PATCH("/buyProduct/:name/:quantity", r.productHandler.BuyProduct, authenticated)

		products.POST("", r.productHandler.CreateProduct, adminOnly...)
		products.PUT("/:id", r.productHandler.UpdateProduct, adminOnly...)
		products.DELETE("/:id", r.productHandler.DeleteProduct, adminOnly...)
	}
}

// registerCategories mounts one API version. Versions differ only in listing order.
func (r *router) registerCategories(g *echo.Group, order entity.CategoryOrder, adminOnly []echo.MiddlewareFunc) {
	g.GET("", r.categoryHandler.ListCategories(order))
	g.GET("/:id", r.categoryHandler.GetCategory, sharedmiddleware.CacheControl(categoryMaxAge))
	g.POST("", r.categoryHandler.CreateCategory, adminOnly...)
	g.PATCH("/:id", r.categoryHandler.UpdateCategory, adminOnly...)
	g.DELETE("/:id", r.categoryHandler.DeleteCategory, adminOnly...)
}

func (r *router) metricsEnabled() bool {
	return r.metrics != nil && r.cfg.Metrics != nil && r.cfg.Metrics.Enabled
}
