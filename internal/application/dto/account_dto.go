package dto

import "time"

// RegisterRequest entrada para crear una cuenta de cliente.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y datos del cliente.
type LoginResponse struct {
	Token    string           `json:"token"`
	Customer CustomerResponse `json:"customer"`
}

// CustomerResponse perfil del cliente (sin hash de contraseña).
type CustomerResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest campos editables del perfil; nil no modifica.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

// AddressRequest entrada para crear o actualizar una dirección.
type AddressRequest struct {
	Label         string `json:"label"`
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
	Barangay      string `json:"barangay"`
	City          string `json:"city" validate:"required"`
	Province      string `json:"province"`
	Region        string `json:"region"`
	PostalCode    string `json:"postal_code"`
	IsDefault     bool   `json:"is_default"`
}

// AddressResponse salida de una dirección.
type AddressResponse struct {
	ID            string    `json:"id"`
	Label         string    `json:"label,omitempty"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	StreetAddress string    `json:"street_address"`
	Barangay      string    `json:"barangay,omitempty"`
	City          string    `json:"city"`
	Province      string    `json:"province,omitempty"`
	Region        string    `json:"region,omitempty"`
	PostalCode    string    `json:"postal_code,omitempty"`
	IsDefault     bool      `json:"is_default"`
	ZoneID        string    `json:"zone_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContactRequest mensaje del formulario de contacto.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
