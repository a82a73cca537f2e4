package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazaar-xyz/goapi/base/ctx"
	"github.com/bazaar-xyz/goapi/base/delivery"
	"github.com/bazaar-xyz/goapi/service/cryptocompare"
)

type handler struct {
	client cryptocompare.Client
}

func New(e *echo.Echo, cryptocompareClient cryptocompare.Client) {
	h := &handler{
		client: cryptocompareClient,
	}

	g := e.Group("/coin")
	g.GET("/ethusd", h.getEthUsd)
}

func (h *handler) getEthUsd(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	val, err := h.client.GetPrice(ctx, "ETH", "USD")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, val)
}
