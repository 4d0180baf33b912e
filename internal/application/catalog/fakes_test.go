package catalog_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ── Fakes de repositorios ────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	rows  []entity.Category
	err   error
	calls int
}

func (f *fakeCategoryRepo) ListAll(ctx context.Context) ([]entity.Category, error) {
	f.calls++
	return f.rows, f.err
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for i := range f.rows {
		if f.rows[i].Slug == slug {
			return &f.rows[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeCategoryRepo) ListTopLevel(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	for _, r := range f.rows {
		if r.ParentID == "" {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeCategoryRepo) ListChildren(ctx context.Context, parentID string) ([]entity.Category, error) {
	var out []entity.Category
	for _, r := range f.rows {
		if r.ParentID == parentID {
			out = append(out, r)
		}
	}
	return out, f.err
}

type fakeProductRepo struct {
	mu         sync.Mutex
	products   []entity.Product
	variants   map[string][]entity.Variant
	categories map[string][]entity.Category
	listErr    error
	countErr   error
	lastFilter entity.ProductFilter
}

func (f *fakeProductRepo) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	f.mu.Lock()
	f.lastFilter = filter
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := f.products
	if filter.Offset < len(out) {
		out = out[filter.Offset:]
	} else {
		out = nil
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, filter entity.ProductFilter) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.products), nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Slug == slug {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetVariant(ctx context.Context, productID, variantID string) (*entity.Variant, error) {
	for _, v := range f.variants[productID] {
		if v.ID == variantID {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListVariants(ctx context.Context, productID string) ([]entity.Variant, error) {
	return f.variants[productID], nil
}

func (f *fakeProductRepo) ListCategories(ctx context.Context, productID string) ([]entity.Category, error) {
	return f.categories[productID], nil
}

func (f *fakeProductRepo) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.IsFeatured && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

var errDB = errors.New("db caída")
