package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// CartHandler carrito del cliente autenticado.
type CartHandler struct {
	svc *cart.CartService
}

// NewCartHandler construye el handler.
func NewCartHandler(svc *cart.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.svc.Get(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar al carrito
// @Description  Si el producto/variante ya está en el carrito se suma la cantidad (1 por defecto).
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto, variante y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Add(c.UserContext(), customerID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Description  Cantidad 0 o negativa elimina la línea.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la línea"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.UpdateQuantity(c.UserContext(), customerID, c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.svc.Remove(c.UserContext(), customerID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	if err := h.svc.Clear(c.UserContext(), customerID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sync godoc
// @Summary      Fusionar carrito de invitado
// @Description  Tras el login se suman los items guardados localmente; los inválidos se omiten.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncCartRequest  true  "Items del carrito de invitado"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/sync [post]
func (h *CartHandler) Sync(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.SyncCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Sync(c.UserContext(), customerID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// WishlistHandler lista de deseos del cliente autenticado.
type WishlistHandler struct {
	svc *cart.WishlistService
}

// NewWishlistHandler construye el handler.
func NewWishlistHandler(svc *cart.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

// Get godoc
// @Summary      Ver lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WishlistItemResponse
// @Router       /api/wishlist [get]
func (h *WishlistHandler) Get(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.svc.Get(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar a la lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WishlistRequest  true  "Producto y variante"
// @Success      201   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wishlist [post]
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.WishlistRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.svc.Add(c.UserContext(), customerID, in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "agregado a la lista de deseos"})
}

// Remove godoc
// @Summary      Quitar de la lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Param        productId   path   string  true   "ID del producto"
// @Param        variant_id  query  string  false  "ID de la variante"
// @Success      204
// @Router       /api/wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	in := dto.WishlistRequest{ProductID: c.Params("productId"), VariantID: c.Query("variant_id")}
	if err := h.svc.Remove(c.UserContext(), customerID, in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
