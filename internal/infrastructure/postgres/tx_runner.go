package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// Ensure TxRunner implements checkout.TxRunner and usecase.AddressTxRunner.
var _ checkout.TxRunner = (*TxRunner)(nil)
var _ usecase.AddressTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout inicia una transacción con los repos de pedidos y carrito atados a ella.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	orders repository.OrderRepository,
	cart repository.CartRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewOrderRepository(tx), NewCartRepository(tx))
	})
}

// RunAddresses inicia una transacción con el repo de direcciones (cambio de dirección por defecto).
func (r *TxRunner) RunAddresses(ctx context.Context, fn func(addresses repository.AddressRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewAddressRepository(tx))
	})
}

// run hace Commit si fn termina sin error; en cualquier otro caso Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
