package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ContactRepository puerto de persistencia de mensajes del formulario de contacto.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
}
