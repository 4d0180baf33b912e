package entity

import "time"

// ContactMessage mensaje enviado desde el formulario de contacto.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
