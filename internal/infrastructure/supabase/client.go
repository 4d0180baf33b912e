// Package supabase cliente REST de solo lectura del backend gestionado, usado por las
// herramientas de desarrollo para leer categorías sin conexión directa a la base.
package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CategorySource = (*Client)(nil)

const categoriesPath = "/rest/v1/categories"

// ClientOpts parámetros del cliente.
type ClientOpts struct {
	URL     string
	AnonKey string
}

// Client acceso a la API REST (PostgREST) con la anon key.
type Client struct {
	httpClient *resty.Client
}

// categoryRow fila tal como la devuelve PostgREST.
type categoryRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ParentID    *string `json:"parent_id"`
}

// NewClient construye el cliente. URL es la raíz del proyecto (https://<ref>.supabase.co).
func NewClient(opts ClientOpts) (*Client, error) {
	if opts.URL == "" || opts.AnonKey == "" {
		return nil, fmt.Errorf("supabase: URL y anon key son obligatorias")
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.URL, "/")).
		SetHeaders(map[string]string{
			"Accept":        "application/json",
			"apikey":        opts.AnonKey,
			"Authorization": "Bearer " + opts.AnonKey,
		})
	return &Client{httpClient: httpClient}, nil
}

// FetchCategories todas las filas de categorías ordenadas por nombre.
func (c *Client) FetchCategories(ctx context.Context) ([]entity.Category, error) {
	var rows []categoryRow
	_, err := handleError(c.httpClient.NewRequest().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select": "id,name,slug,description,image,parent_id",
			"order":  "name.asc",
		}).
		SetResult(&rows).
		Get(categoriesPath))
	if err != nil {
		return nil, fmt.Errorf("supabase: listar categorías: %w", err)
	}
	out := make([]entity.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.Category{
			ID:          r.ID,
			Name:        r.Name,
			Slug:        r.Slug,
			Description: deref(r.Description),
			Image:       deref(r.Image),
			ParentID:    deref(r.ParentID),
		})
	}
	return out, nil
}

// handleError convierte respuestas >399 en error; resty no lo hace por sí solo.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}
	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
