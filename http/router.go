package http

import (
	"net/http"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(purchaser TicketPurchaser) *echo.Echo {
	if purchaser == nil {
		panic("purchaser is required")
	}

	e := libHttp.NewEcho()
	e.Use(otelecho.Middleware("cinema-tickets"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		purchaser: purchaser,
	}

	e.POST("/ticket-purchases", handler.PostTicketPurchases)
	e.POST("/ticket-purchases/quote", handler.PostTicketPurchasesQuote)

	return e
}
