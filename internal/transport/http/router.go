package rest

import (
	"path/filepath"

	"github.com/Gunvolt24/coffee_delivery/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — gin-движок со всеми middleware и маршрутами витрины.
// otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/success/:id", h.takeConfirmation)

	// всё, что привязано к покупателю, требует сессию
	session := api.Group("", httpx.SessionMiddleware(h.sessionMaxAge))
	session.GET("/cart", h.getCart)
	session.GET("/cart/badge", h.getBadge)
	session.GET("/cart/badge/ws", h.badgeStream)
	session.POST("/cart/items", h.addItem)
	session.PATCH("/cart/items/:id", h.updateItem)
	session.DELETE("/cart/items/:id", h.removeItem)

	session.GET("/checkout", h.getCheckout)
	session.PUT("/checkout/fields/:field", h.setField)
	session.POST("/checkout/submit", h.submit)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
