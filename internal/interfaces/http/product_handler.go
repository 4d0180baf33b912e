package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

// ProductHandler endpoints públicos del catálogo de productos.
type ProductHandler struct {
	svc *catalog.ProductService
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *catalog.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List godoc
// @Summary      Listar productos
// @Description  Listado paginado de productos publicados. category/subcategory se resuelven a ids de categoría.
// @Tags         products
// @Produce      json
// @Param        category      query  string  false  "Slug de categoría"
// @Param        subcategory   query  string  false  "Slug de subcategoría"
// @Param        category_ids  query  string  false  "IDs de categoría separados por coma"
// @Param        search        query  string  false  "Texto a buscar en nombre y descripción"
// @Param        min_price     query  string  false  "Precio mínimo"
// @Param        max_price     query  string  false  "Precio máximo"
// @Param        stock_status  query  string  false  "instock | outofstock | onbackorder"
// @Param        featured      query  bool    false  "Solo destacados"
// @Param        sort          query  string  false  "name | price_asc | price_desc | newest"
// @Param        page          query  int     false  "Página"  default(1)
// @Param        page_size     query  int     false  "Tamaño de página"  default(12)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	in, err := parseProductList(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	out, err := h.svc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(8)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/featured [get]
func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	out, err := h.svc.Featured(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos
// @Tags         products
// @Produce      json
// @Param        q      query  string  true   "Texto a buscar"
// @Param        limit  query  int     false  "Límite"  default(20)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.Search(c.UserContext(), c.Query("q"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/id/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// parseProductList lee los filtros a mano: decimal y bool opcionales no pasan por QueryParser.
func parseProductList(c *fiber.Ctx) (dto.ProductListRequest, error) {
	in := dto.ProductListRequest{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Search:      c.Query("search"),
		StockStatus: c.Query("stock_status"),
		Sort:        c.Query("sort"),
		Page:        c.QueryInt("page", 1),
		PageSize:    c.QueryInt("page_size", 0),
	}
	for _, id := range strings.Split(c.Query("category_ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			in.CategoryIDs = append(in.CategoryIDs, id)
		}
	}
	var err error
	if in.MinPrice, err = queryDecimal(c, "min_price"); err != nil {
		return in, err
	}
	if in.MaxPrice, err = queryDecimal(c, "max_price"); err != nil {
		return in, err
	}
	if raw := c.Query("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return in, fiber.NewError(fiber.StatusBadRequest, "featured debe ser true o false")
		}
		in.Featured = &b
	}
	return in, nil
}

func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" debe ser numérico")
	}
	return &d, nil
}
