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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre customer_profiles.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Email repetido devuelve domain.ErrEmailAlreadyExists.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customer_profiles (id, email, password_hash, full_name, phone, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Email, c.PasswordHash, c.FullName, c.Phone, c.AvatarURL, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.getOne(ctx, `WHERE id::text = $1`, id)
}

// GetByEmail obtiene un cliente por email (sin distinguir mayúsculas). nil si no existe.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.getOne(ctx, `WHERE lower(email) = lower($1)`, email)
}

// UpdateProfile actualiza nombre, teléfono y avatar.
func (r *CustomerRepo) UpdateProfile(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customer_profiles SET full_name = $2, phone = $3, avatar_url = $4, updated_at = $5
		WHERE id::text = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.FullName, c.Phone, c.AvatarURL, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *CustomerRepo) getOne(ctx context.Context, where string, args ...any) (*entity.Customer, error) {
	query := `
		SELECT id::text, email, password_hash, full_name, phone, avatar_url, created_at, updated_at
		FROM customer_profiles ` + where
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Email, &c.PasswordHash, &c.FullName, &c.Phone, &c.AvatarURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}
