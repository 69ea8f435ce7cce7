package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User operador del sistema.
type User struct {
	Meta
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"` // bcrypt, nunca texto plano
	Role         string `json:"role"`
}
