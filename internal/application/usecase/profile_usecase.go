package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ProfileUseCase lectura y edición del perfil del cliente.
type ProfileUseCase struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

// NewProfileUseCase construye el caso de uso con el puerto de persistencia.
func NewProfileUseCase(repo repository.CustomerRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, now: time.Now}
}

// Get perfil del cliente; nil si no existe.
func (uc *ProfileUseCase) Get(ctx context.Context, customerID string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomer(c), nil
}

// Update aplica los campos no nil. El nombre no puede quedar vacío.
func (uc *ProfileUseCase) Update(ctx context.Context, customerID string, in dto.UpdateProfileRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full_name no puede estar vacío", domain.ErrInvalidInput)
		}
		c.FullName = name
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.AvatarURL != nil {
		c.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}
	c.UpdatedAt = uc.now()
	if err := uc.repo.UpdateProfile(ctx, c); err != nil {
		return nil, err
	}
	return dto.FromCustomer(c), nil
}
