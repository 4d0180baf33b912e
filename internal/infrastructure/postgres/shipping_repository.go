package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.ShippingRepository = (*ShippingRepo)(nil)

// ShippingRepo implementación de ShippingRepository sobre PostgreSQL.
type ShippingRepo struct {
	q Querier
}

// NewShippingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShippingRepository(q Querier) *ShippingRepo {
	return &ShippingRepo{q: q}
}

// ZoneIDForCity busca la ciudad en ph_cities y, si no está, en metro_manila_cities.
func (r *ShippingRepo) ZoneIDForCity(ctx context.Context, city string) (string, error) {
	for _, table := range []string{"ph_cities", "metro_manila_cities"} {
		query := `SELECT zone_id::text FROM ` + table + ` WHERE lower(name) = lower($1) AND zone_id IS NOT NULL ORDER BY id LIMIT 1`
		var zoneID string
		err := r.q.QueryRow(ctx, query, city).Scan(&zoneID)
		if err == nil {
			return zoneID, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("zone for city (%s): %w", table, err)
		}
	}
	return "", nil
}

// GetZone obtiene una zona por ID. nil si no existe.
func (r *ShippingRepo) GetZone(ctx context.Context, id string) (*entity.ShippingZone, error) {
	var z entity.ShippingZone
	err := r.q.QueryRow(ctx, `SELECT id::text, name, type, enabled FROM shipping_zones WHERE id::text = $1`, id).
		Scan(&z.ID, &z.Name, &z.Type, &z.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipping zone: %w", err)
	}
	return &z, nil
}

// ListZones zonas habilitadas ordenadas por nombre.
func (r *ShippingRepo) ListZones(ctx context.Context) ([]entity.ShippingZone, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, name, type, enabled FROM shipping_zones WHERE enabled ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list shipping zones: %w", err)
	}
	defer rows.Close()
	var out []entity.ShippingZone
	for rows.Next() {
		var z entity.ShippingZone
		if err := rows.Scan(&z.ID, &z.Name, &z.Type, &z.Enabled); err != nil {
			return nil, fmt.Errorf("scan shipping zone: %w", err)
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

// ListRatesByZone tarifas de una zona; la primera es la vigente.
func (r *ShippingRepo) ListRatesByZone(ctx context.Context, zoneID string) ([]entity.ShippingRate, error) {
	query := `
		SELECT id::text, zone_id::text, rate, min_order_amount, free_shipping_threshold
		FROM shipping_rates WHERE zone_id::text = $1 ORDER BY rate, id`
	rows, err := r.q.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list shipping rates: %w", err)
	}
	defer rows.Close()
	var out []entity.ShippingRate
	for rows.Next() {
		var sr entity.ShippingRate
		if err := rows.Scan(&sr.ID, &sr.ZoneID, &sr.Rate, &sr.MinOrderAmount, &sr.FreeShippingThreshold); err != nil {
			return nil, fmt.Errorf("scan shipping rate: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
