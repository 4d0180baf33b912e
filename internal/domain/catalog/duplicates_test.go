package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

func TestFindDuplicateNames(t *testing.T) {
	rows := []entity.Category{
		{ID: "1", Name: "Underwear", Slug: "underwear-man"},
		{ID: "2", Name: "Apparel", Slug: "mens-apparel"},
		{ID: "3", Name: "Underwear", Slug: "underwear"},
		{ID: "4", Name: "Apparel", Slug: "ladies-apparel"},
		{ID: "5", Name: "Denims", Slug: "denims"},
	}
	groups := catalog.FindDuplicateNames(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "Apparel", groups[0].Name)
	assert.Equal(t, "Underwear", groups[1].Name)
	assert.Equal(t, "1", groups[1].Rows[0].ID, "se conserva el orden de entrada dentro del grupo")
	assert.Equal(t, "3", groups[1].Rows[1].ID)

	assert.Empty(t, catalog.FindDuplicateNames(rows[4:]))
}

func TestIndex(t *testing.T) {
	idx := catalog.NewIndex(fixtureRows())

	men := idx.ByID("c-men-denims")
	require.NotNil(t, men)
	assert.Equal(t, "Men", idx.ParentName(*men))
	assert.Equal(t, "", idx.ParentName(entity.Category{ID: "x", ParentID: "no-existe"}))
	assert.Equal(t, []string{"De Hilo", "Men"}, idx.Names([]string{"c-dehilo", "desconocido", "c-men"}))
}
