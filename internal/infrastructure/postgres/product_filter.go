package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// productWhere construye el WHERE del listado. Solo productos publicados.
func productWhere(f entity.ProductFilter) (string, []any) {
	conds := []string{"p.status = 'published'"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.CategoryIDs) > 0 {
		conds = append(conds, `EXISTS (SELECT 1 FROM product_categories pc
			WHERE pc.product_id = p.id AND pc.category_id::text = ANY(`+arg(f.CategoryIDs)+`))`)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := arg("%" + escapeLike(s) + "%")
		conds = append(conds, "(p.name ILIKE "+p+" OR p.description ILIKE "+p+")")
	}
	if f.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*f.MaxPrice))
	}
	if f.StockStatus != "" {
		conds = append(conds, "p.stock_status = "+arg(f.StockStatus))
	}
	if f.IsFeatured != nil {
		conds = append(conds, "p.is_featured = "+arg(*f.IsFeatured))
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// productOrder ORDER BY según SortBy; por defecto los más nuevos primero.
func productOrder(sortBy string) string {
	switch sortBy {
	case entity.SortByName:
		return "ORDER BY p.name ASC, p.id"
	case entity.SortByPriceAsc:
		return "ORDER BY p.price ASC NULLS LAST, p.id"
	case entity.SortByPriceDesc:
		return "ORDER BY p.price DESC NULLS LAST, p.id"
	default:
		return "ORDER BY p.created_at DESC, p.id"
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
