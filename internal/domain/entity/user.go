package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// User representa un usuario del sistema (cajero). El núcleo transaccional lo
// consume como un id opaco; aquí solo se usa para login.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
}
