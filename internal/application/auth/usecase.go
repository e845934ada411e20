package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
	"github.com/jcastror/resto-inventario/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	events   repository.EventLogRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, events repository.EventLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, events: events, jwtCfg: jwtCfg}
}

// Login resuelve el identificador (username o email), verifica el password
// con bcrypt y genera el JWT. Usuario inexistente retorna ErrUserNotFound;
// password incorrecto, ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.recordLogin(user)
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CurrentUser devuelve el usuario del token (GET /api/auth/me), o nil si la
// cuenta fue desactivada después de emitir el token.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// recordLogin escribe el evento de auditoría; un fallo solo se registra en el log.
func (uc *AuthUseCase) recordLogin(user *entity.User) {
	if uc.events == nil {
		return
	}
	err := uc.events.Record(&entity.EventLog{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Action:    "login",
		Entity:    "user",
		EntityID:  user.ID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("registro de evento login fallido")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		RoleID:    u.RoleID,
		Role:      u.RoleName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
