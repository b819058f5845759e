package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantrkucb/OrderBookVisualiser/handlers"
	"github.com/quantrkucb/OrderBookVisualiser/service"
)

func RegisterRoutes(router *gin.Engine, svc *service.OrderService, registry *prometheus.Registry) {
	orderHandler := handlers.NewOrderHandler(svc)

	api := router.Group("/api")
	{
		api.POST("/orders", orderHandler.PlaceOrder)
		api.GET("/orderbook", orderHandler.GetOrderBook)
		api.GET("/trades", orderHandler.ListTrades)
		api.GET("/orders/:id", orderHandler.GetOrderStatus)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
