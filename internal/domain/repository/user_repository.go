package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// UserRepository puerto de lectura de usuarios (solo login).
type UserRepository interface {
	// FindByUsername obtiene un usuario activo por username. (nil, nil) si no existe.
	FindByUsername(username string) (*entity.User, error)
}
