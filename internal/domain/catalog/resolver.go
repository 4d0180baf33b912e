// Package catalog contiene la resolución de slugs de URL de marketing
// (?category=men&subcategory=denims) a ids de categoría.
//
// Resolve es una función pura: no hace I/O ni guarda estado. Entradas, slugs de filas y
// nombres pasan por NormalizeSlug antes de compararse (sin mayúsculas ni acentos).
// Ante varios candidatos se aplica un desempate explícito:
//
//   - subcategoría: igualdad exacta > slug unido con sinónimo (men-denims, denims-men) >
//     slug con sufijo de género (underwear-man); a igual rango gana el primero en rows.
//   - hijo por nombre: palabra completa ("Men's") > subcadena ("Women"); luego orden en rows.
//   - categoría sola: slug literal > alias; luego orden en rows.
package catalog

import (
	"strings"
	"unicode"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// Strategy indica qué paso de la resolución produjo el resultado.
type Strategy string

const (
	StrategyNone              Strategy = "none"
	StrategyCategory          Strategy = "category"
	StrategySubcategory       Strategy = "subcategory"
	StrategySubcategoryChild  Strategy = "subcategory_child"
	StrategySubcategoryParent Strategy = "subcategory_parent"
)

// Resolution resultado de la resolución. IDs vacío significa "sin filtro".
type Resolution struct {
	IDs      []string
	Strategy Strategy
}

// Resolver resuelve slugs con una tabla de sinónimos fija.
type Resolver struct {
	synonyms *SynonymTable
}

// NewResolver construye el resolver; nil usa DefaultSynonyms.
func NewResolver(synonyms *SynonymTable) *Resolver {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Resolver{synonyms: synonyms}
}

var defaultResolver = NewResolver(nil)

// Resolve resuelve con la tabla de sinónimos por defecto.
func Resolve(categorySlug, subcategorySlug string, rows []entity.Category) []string {
	return defaultResolver.Resolve(categorySlug, subcategorySlug, rows)
}

// Resolve devuelve los ids de categoría por los que filtrar el listado.
func (r *Resolver) Resolve(categorySlug, subcategorySlug string, rows []entity.Category) []string {
	return r.ResolveDetailed(categorySlug, subcategorySlug, rows).IDs
}

// ResolveDetailed como Resolve pero informa la estrategia que produjo el resultado.
func (r *Resolver) ResolveDetailed(categorySlug, subcategorySlug string, rows []entity.Category) Resolution {
	cat := normalize(categorySlug)
	sub := normalize(subcategorySlug)
	if cat == "" {
		return Resolution{Strategy: StrategyNone}
	}
	syns := r.synonyms.Expand(cat)

	if sub != "" {
		byID := make(map[string]*entity.Category, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		if row := matchSubcategory(sub, syns, r.synonyms.Suffix(cat), rows, byID); row != nil {
			return single(row, StrategySubcategory)
		}
		// Categorías principales tipo "Denims" cuyos hijos son "For Men's" / "For Ladies".
		if parent := findBySlug(sub, rows); parent != nil {
			if child := matchChildByName(parent.ID, syns, rows); child != nil {
				return single(child, StrategySubcategoryChild)
			}
			return single(parent, StrategySubcategoryParent)
		}
	}

	if row := matchCategory(syns, rows); row != nil {
		return single(row, StrategyCategory)
	}
	return Resolution{Strategy: StrategyNone}
}

type matchRank int

const (
	rankNone matchRank = iota
	rankExact
	rankJoined
	rankSuffixed
)

func matchSubcategory(sub string, syns []string, suffix string, rows []entity.Category, byID map[string]*entity.Category) *entity.Category {
	var best *entity.Category
	bestRank := rankNone
	for i := range rows {
		slug := normalize(rows[i].Slug)
		rank := subcategoryRank(slug, sub, syns, suffix)
		if rank == rankNone || (best != nil && rank >= bestRank) {
			continue
		}
		if !belongsTo(&rows[i], slug, syns, byID) {
			continue
		}
		best, bestRank = &rows[i], rank
		if rank == rankExact {
			break
		}
	}
	return best
}

func subcategoryRank(slug, sub string, syns []string, suffix string) matchRank {
	if slug == sub {
		return rankExact
	}
	for _, s := range syns {
		if slug == s+"-"+sub || slug == sub+"-"+s {
			return rankJoined
		}
	}
	if suffix != "" && slug == sub+"-"+suffix {
		return rankSuffixed
	}
	return rankNone
}

// belongsTo acepta el candidato si su padre es la categoría pedida o, sin padre conocido,
// si su propio slug menciona la categoría (ej. "mens-apparel").
func belongsTo(row *entity.Category, slug string, syns []string, byID map[string]*entity.Category) bool {
	if row.HasParent() {
		if parent, ok := byID[row.ParentID]; ok {
			return containsString(syns, normalize(parent.Slug))
		}
	}
	for _, s := range syns {
		if strings.Contains(slug, s) {
			return true
		}
	}
	return false
}

func matchChildByName(parentID string, syns []string, rows []entity.Category) *entity.Category {
	var partial *entity.Category
	for i := range rows {
		if rows[i].ParentID != parentID {
			continue
		}
		name := normalize(rows[i].Name)
		words := strings.FieldsFunc(name, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, s := range syns {
			if containsString(words, s) {
				return &rows[i]
			}
			if partial == nil && strings.Contains(name, s) {
				partial = &rows[i]
			}
		}
	}
	return partial
}

func matchCategory(syns []string, rows []entity.Category) *entity.Category {
	var alias *entity.Category
	for i := range rows {
		slug := normalize(rows[i].Slug)
		if slug == syns[0] {
			return &rows[i]
		}
		if alias == nil && containsString(syns[1:], slug) {
			alias = &rows[i]
		}
	}
	return alias
}

func findBySlug(slug string, rows []entity.Category) *entity.Category {
	for i := range rows {
		if normalize(rows[i].Slug) == slug {
			return &rows[i]
		}
	}
	return nil
}

func single(row *entity.Category, s Strategy) Resolution {
	return Resolution{IDs: []string{row.ID}, Strategy: s}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
