package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios (solo administrador).
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	events   repository.EventLogRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository, events repository.EventLogRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo, events: events}
}

// Create crea un usuario: valida el rol, hashea el password con bcrypt y
// persiste. Username o email ya registrados retornan ErrDuplicate.
func (uc *UserUseCase) Create(actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.RoleID == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.FindByIdentifier(in.Username)
	if existing == nil {
		existing, _ = uc.repo.FindByIdentifier(in.Email)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		RoleID:       in.RoleID,
		RoleName:     role.Name,
		Visible:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "create", "user", user.ID, user.Username)
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario visible por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario. Username es inmutable; password se rehashea.
func (uc *UserUseCase) Update(actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.RoleID != nil {
		role, err := uc.roleRepo.GetByID(*in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrInvalidInput
		}
		user.RoleID = *in.RoleID
		user.RoleName = role.Name
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "update", "user", user.ID, user.Username)
	return toUserResponse(user), nil
}

// List lista usuarios visibles con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete marca el usuario como no visible. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.SoftDelete(id); err != nil {
		return err
	}
	recordEvent(uc.events, actorID, "delete", "user", id, user.Username)
	return nil
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
