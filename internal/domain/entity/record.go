package entity

import "time"

// Meta es el sobre común de todo registro persistido.
// El almacén asigna los tres campos al crear y los preserva al actualizar.
type Meta struct {
	ID        string    `json:"id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Base expone el sobre para que el almacén genérico lo gestione.
func (m *Meta) Base() *Meta { return m }

// Actor usuario autenticado que ejecuta una operación.
type Actor struct {
	UserID   string
	Username string
	Role     string
}

// ID devuelve el id del actor, vacío si no hay sesión.
func (a *Actor) ID() string {
	if a == nil {
		return ""
	}
	return a.UserID
}

// IsAdmin indica si el actor tiene rol administrador.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
