package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ContactUseCase guarda los mensajes del formulario de contacto.
type ContactUseCase struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo, now: time.Now}
}

// Submit valida y persiste el mensaje. Todos los campos son obligatorios.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactRequest) error {
	msg := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: uc.now(),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return fmt.Errorf("%w: name, email, subject y message son obligatorios", domain.ErrInvalidInput)
	}
	if !ValidEmail(msg.Email) {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	return uc.repo.Create(ctx, msg)
}

// ValidEmail acepta solo la dirección desnuda (sin nombre visible) con dominio.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domainPart, ok := strings.Cut(s, "@")
	return ok && strings.Contains(domainPart, ".")
}
