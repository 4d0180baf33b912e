package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
)

// AccountHandler perfil y direcciones del cliente autenticado.
type AccountHandler struct {
	profile   *usecase.ProfileUseCase
	addresses *usecase.AddressUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(profile *usecase.ProfileUseCase, addresses *usecase.AddressUseCase) *AccountHandler {
	return &AccountHandler{profile: profile, addresses: addresses}
}

// GetProfile godoc
// @Summary      Ver perfil
// @Tags         account
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account/profile [get]
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.profile.Get(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil
// @Description  Solo se modifican los campos enviados.
// @Tags         account
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "full_name, phone, avatar_url"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/account/profile [put]
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.profile.Update(c.UserContext(), customerID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListAddresses godoc
// @Summary      Mis direcciones
// @Description  La dirección por defecto primero, luego las más recientes.
// @Tags         account
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AddressResponse
// @Router       /api/account/addresses [get]
func (h *AccountHandler) ListAddresses(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.addresses.List(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetAddress godoc
// @Summary      Ver dirección
// @Tags         account
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la dirección"
// @Success      200  {object}  dto.AddressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account/addresses/{id} [get]
func (h *AccountHandler) GetAddress(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.addresses.Get(c.UserContext(), customerID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "dirección no encontrada")
	}
	return c.JSON(out)
}

// DefaultAddress godoc
// @Summary      Dirección por defecto
// @Description  Si ninguna está marcada se devuelve la primera.
// @Tags         account
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AddressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account/addresses/default [get]
func (h *AccountHandler) DefaultAddress(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.addresses.GetDefault(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "sin direcciones guardadas")
	}
	return c.JSON(out)
}

// CreateAddress godoc
// @Summary      Guardar dirección
// @Tags         account
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddressRequest  true  "Datos de la dirección"
// @Success      201   {object}  dto.AddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/account/addresses [post]
func (h *AccountHandler) CreateAddress(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.AddressRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.addresses.Create(c.UserContext(), customerID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateAddress godoc
// @Summary      Actualizar dirección
// @Tags         account
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la dirección"
// @Param        body  body  dto.AddressRequest  true  "Datos de la dirección"
// @Success      200   {object}  dto.AddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/account/addresses/{id} [put]
func (h *AccountHandler) UpdateAddress(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	var in dto.AddressRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.addresses.Update(c.UserContext(), customerID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteAddress godoc
// @Summary      Eliminar dirección
// @Tags         account
// @Security     Bearer
// @Param        id   path  string  true  "ID de la dirección"
// @Success      204
// @Router       /api/account/addresses/{id} [delete]
func (h *AccountHandler) DeleteAddress(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	if err := h.addresses.Delete(c.UserContext(), customerID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetDefaultAddress godoc
// @Summary      Marcar dirección por defecto
// @Description  Desmarca las demás direcciones del cliente.
// @Tags         account
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la dirección"
// @Success      200  {object}  dto.AddressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account/addresses/{id}/default [put]
func (h *AccountHandler) SetDefaultAddress(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return unauthorized(c)
	}
	out, err := h.addresses.SetDefault(c.UserContext(), customerID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
