package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

const addressColumns = `
	id::text, customer_id::text, label, full_name, phone, street_address, barangay, city, province,
	region, postal_code, is_default, COALESCE(zone_id::text, ''), created_at, updated_at`

// AddressRepo implementación de AddressRepository sobre customer_addresses.
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// ListByCustomer por defecto primero, luego las más recientes.
func (r *AddressRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM customer_addresses
		WHERE customer_id::text = $1 ORDER BY is_default DESC, created_at DESC, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var out []entity.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// GetByID dirección del cliente. nil si no existe.
func (r *AddressRepo) GetByID(ctx context.Context, customerID, id string) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM customer_addresses WHERE id::text = $1 AND customer_id::text = $2`
	a, err := scanAddress(r.q.QueryRow(ctx, query, id, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return a, nil
}

// Create persiste una dirección nueva.
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	query := `
		INSERT INTO customer_addresses (id, customer_id, label, full_name, phone, street_address, barangay, city,
			province, region, postal_code, is_default, zone_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CustomerID, a.Label, a.FullName, a.Phone, a.StreetAddress, a.Barangay, a.City,
		a.Province, a.Region, a.PostalCode, a.IsDefault, nullIfEmpty(a.ZoneID), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// Update actualiza los datos de la dirección (incluida la marca por defecto).
func (r *AddressRepo) Update(ctx context.Context, a *entity.Address) error {
	query := `
		UPDATE customer_addresses SET label = $3, full_name = $4, phone = $5, street_address = $6, barangay = $7,
			city = $8, province = $9, region = $10, postal_code = $11, is_default = $12, zone_id = $13, updated_at = $14
		WHERE id::text = $1 AND customer_id::text = $2`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.CustomerID, a.Label, a.FullName, a.Phone, a.StreetAddress, a.Barangay,
		a.City, a.Province, a.Region, a.PostalCode, a.IsDefault, nullIfEmpty(a.ZoneID), a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la dirección.
func (r *AddressRepo) Delete(ctx context.Context, customerID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customer_addresses WHERE id::text = $1 AND customer_id::text = $2`, id, customerID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearDefault quita la marca por defecto de todas las direcciones del cliente.
func (r *AddressRepo) ClearDefault(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `UPDATE customer_addresses SET is_default = FALSE WHERE customer_id::text = $1 AND is_default`, customerID)
	if err != nil {
		return fmt.Errorf("clear default address: %w", err)
	}
	return nil
}

// SetDefault marca la dirección como por defecto. Llamar después de ClearDefault en la misma tx.
func (r *AddressRepo) SetDefault(ctx context.Context, customerID, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE customer_addresses SET is_default = TRUE, updated_at = now() WHERE id::text = $1 AND customer_id::text = $2`, id, customerID)
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAddress(row pgx.Row) (*entity.Address, error) {
	var a entity.Address
	err := row.Scan(
		&a.ID, &a.CustomerID, &a.Label, &a.FullName, &a.Phone, &a.StreetAddress, &a.Barangay, &a.City,
		&a.Province, &a.Region, &a.PostalCode, &a.IsDefault, &a.ZoneID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
