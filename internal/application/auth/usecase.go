package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/pkg/jwt"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// DefaultAdminPassword contraseña de desarrollo cuando SEED_ADMIN_PASSWORD no está definida.
const DefaultAdminPassword = "admin123"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuditRecorder puerto de la bitácora.
type AuditRecorder interface {
	Record(ctx context.Context, actor *entity.Actor, action, details string) error
}

// AuthUseCase casos de uso de autenticación: login y usuario administrador inicial.
type AuthUseCase struct {
	users  repository.Collection[entity.User]
	audit  AuditRecorder
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.Collection[entity.User], audit AuditRecorder, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, audit: audit, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var user *entity.User
	for i := range users {
		if users[i].Username == in.Username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	actor := &entity.Actor{UserID: user.ID, Username: user.Username, Role: user.Role}
	_ = uc.audit.Record(ctx, actor, entity.ActionLogin, "User logged in: "+user.Username)
	return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(*user)}, nil
}

// EnsureAdmin crea el administrador inicial si la colección de usuarios está vacía.
// Con password vacío usa DefaultAdminPassword y lo advierte en el log.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		username = "admin"
	}
	usedDefault := password == ""
	if usedDefault {
		password = DefaultAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	created := false
	err = uc.users.Apply(ctx, func(items []entity.User) ([]entity.User, error) {
		if len(items) > 0 {
			return items, nil
		}
		created = true
		return append(items, entity.User{
			Meta:         entity.Meta{ID: uuid.New().String(), CreatedBy: "system", CreatedAt: time.Now().UTC()},
			Username:     username,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
		}), nil
	})
	if err != nil {
		return false, err
	}
	if created {
		ev := uc.log.Info()
		if usedDefault {
			ev = uc.log.Warn().Str("hint", "defina SEED_ADMIN_PASSWORD")
		}
		ev.Str("username", username).Bool("default_password", usedDefault).Msg("administrador inicial creado")
	}
	return created, nil
}
