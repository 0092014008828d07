package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleBuyer   = "BUYER"
	RoleRealtor = "REALTOR"
	RoleAdmin   = "ADMIN"
)

// ParseRole normaliza el tipo de usuario recibido en la ruta (buyer, Realtor...).
func ParseRole(s string) (string, bool) {
	switch r := strings.ToUpper(strings.TrimSpace(s)); r {
	case RoleBuyer, RoleRealtor, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// User representa un usuario del sistema: comprador, realtor o administrador.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // BUYER, REALTOR, ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contact datos públicos de contacto (sin hash de contraseña).
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Contact devuelve los datos públicos del usuario.
func (u *User) Contact() Contact {
	return Contact{Name: u.Name, Email: u.Email, Phone: u.Phone}
}
