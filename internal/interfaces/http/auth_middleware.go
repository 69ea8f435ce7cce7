package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/pkg/jwt"
)

// Locals keys del usuario autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// UserLookup resuelve el usuario vigente detrás de un token.
type UserLookup interface {
	Get(ctx context.Context, id string) (dto.UserResponse, error)
}

// AuthOption ajusta AuthMiddleware.
type AuthOption func(*authConfig)

type authConfig struct {
	users UserLookup
}

// WithUserLookup toma nombre y rol del usuario almacenado en vez de los claims:
// un usuario eliminado queda fuera y un cambio de rol aplica sin esperar a que expire el token.
func WithUserLookup(users UserLookup) AuthOption {
	return func(cfg *authConfig) { cfg.users = users }
}

// AuthMiddleware valida el Bearer Token JWT y carga usuario, nombre y rol en c.Locals.
func AuthMiddleware(jwtSecret string, opts ...AuthOption) fiber.Handler {
	var cfg authConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || claims.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		username, role := claims.Username, claims.Role
		if cfg.users != nil {
			u, err := cfg.users.Get(c.UserContext(), claims.UserID)
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_REVOKED", Message: "el usuario del token ya no existe"})
			}
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo verificar el usuario"})
			}
			username, role = u.Username, u.Role
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado para el rol " + role})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetActor arma el actor de la petición; nil sin sesión.
func GetActor(c *fiber.Ctx) *entity.Actor {
	id := GetUserID(c)
	if id == "" {
		return nil
	}
	return &entity.Actor{UserID: id, Username: localString(c, LocalUsername), Role: GetRole(c)}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
