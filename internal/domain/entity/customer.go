package entity

import "time"

// Customer cliente de la tienda (cuenta + perfil).
type Customer struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	FullName     string
	Phone        string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address dirección guardada de un cliente. Como máximo una con IsDefault por cliente.
type Address struct {
	ID            string
	CustomerID    string
	Label         string
	FullName      string
	Phone         string
	StreetAddress string
	Barangay      string
	City          string
	Province      string
	Region        string
	PostalCode    string
	IsDefault     bool
	ZoneID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
