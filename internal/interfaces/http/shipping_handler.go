package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/shopspring/decimal"
)

// ShippingHandler tarifas y zonas de envío (público).
type ShippingHandler struct {
	svc *checkout.ShippingService
}

// NewShippingHandler construye el handler.
func NewShippingHandler(svc *checkout.ShippingService) *ShippingHandler {
	return &ShippingHandler{svc: svc}
}

// Rate godoc
// @Summary      Tarifa de envío por ciudad
// @Description  Ciudad sin zona conocida usa la tarifa por defecto.
// @Tags         shipping
// @Produce      json
// @Param        city  query  string  true  "Ciudad o municipio"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipping/rate [get]
func (h *ShippingHandler) Rate(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return badRequest(c, "VALIDATION", "city es requerido")
	}
	rate, err := h.svc.GetShippingRate(c.UserContext(), city)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"city": city, "rate": rate, "currency": h.svc.Currency()})
}

// Quote godoc
// @Summary      Cotizar envío
// @Description  Costo para la ciudad y el subtotal; 0 si se alcanza el umbral de envío gratis de la zona.
// @Tags         shipping
// @Produce      json
// @Param        city      query  string  true   "Ciudad o municipio"
// @Param        subtotal  query  string  false  "Subtotal del pedido"
// @Success      200       {object}  dto.ShippingQuoteResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/shipping/quote [get]
func (h *ShippingHandler) Quote(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return badRequest(c, "VALIDATION", "city es requerido")
	}
	subtotal := decimal.Zero
	if sub, err := queryDecimal(c, "subtotal"); err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	} else if sub != nil {
		subtotal = *sub
	}
	out, err := h.svc.Quote(c.UserContext(), city, subtotal)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Zones godoc
// @Summary      Zonas de envío habilitadas
// @Tags         shipping
// @Produce      json
// @Success      200  {array}  dto.ShippingZoneResponse
// @Router       /api/shipping/zones [get]
func (h *ShippingHandler) Zones(c *fiber.Ctx) error {
	out, err := h.svc.ListZones(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ZoneRates godoc
// @Summary      Tarifas de una zona
// @Tags         shipping
// @Produce      json
// @Param        id   path  string  true  "ID de la zona"
// @Success      200  {array}  dto.ShippingRateResponse
// @Router       /api/shipping/zones/{id}/rates [get]
func (h *ShippingHandler) ZoneRates(c *fiber.Ctx) error {
	out, err := h.svc.ListRatesByZone(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Detect godoc
// @Summary      Detectar zona por ciudad
// @Tags         shipping
// @Produce      json
// @Param        city  query  string  true  "Ciudad o municipio"
// @Success      200   {object}  dto.ShippingZoneResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shipping/detect [get]
func (h *ShippingHandler) Detect(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return badRequest(c, "VALIDATION", "city es requerido")
	}
	out, err := h.svc.DetectZone(c.UserContext(), city)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "ciudad sin zona de envío")
	}
	return c.JSON(out)
}
