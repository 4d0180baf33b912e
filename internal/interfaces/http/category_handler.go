package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
)

// CategoryHandler endpoints públicos de categorías.
type CategoryHandler struct {
	svc *catalog.CategoryService
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(svc *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary      Listar categorías
// @Description  Todas las categorías ordenadas por nombre, con el número de productos publicados.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopLevel godoc
// @Summary      Categorías raíz
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/top [get]
func (h *CategoryHandler) TopLevel(c *fiber.Ctx) error {
	out, err := h.svc.ListTopLevel(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Children godoc
// @Summary      Subcategorías de una categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría padre"
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/children [get]
func (h *CategoryHandler) Children(c *fiber.Ctx) error {
	out, err := h.svc.ListChildren(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener categoría por slug
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver slugs de marketing a categorías
// @Description  Traduce ?category=&subcategory= a los ids de categoría que filtra el listado de productos.
// @Description  Sin coincidencias devuelve category_ids vacío y strategy "none".
// @Tags         categories
// @Produce      json
// @Param        category     query  string  true   "Slug de categoría, ej. men"
// @Param        subcategory  query  string  false  "Slug de subcategoría, ej. denims"
// @Success      200  {object}  dto.ResolveCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories/resolve [get]
func (h *CategoryHandler) Resolve(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return badRequest(c, "VALIDATION", "category es requerido")
	}
	out, err := h.svc.Resolve(c.UserContext(), category, c.Query("subcategory"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
