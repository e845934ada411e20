package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// RoleUseCase casos de uso CRUD para roles (solo administrador).
type RoleUseCase struct {
	repo     repository.RoleRepository
	userRepo repository.UserRepository
	events   repository.EventLogRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, userRepo repository.UserRepository, events repository.EventLogRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo, userRepo: userRepo, events: events}
}

// Create crea un nuevo rol. El nombre es único entre roles visibles.
func (uc *RoleUseCase) Create(actorID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Visible:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "create", "role", role.ID, role.Name)
	return toRoleResponse(role), nil
}

// GetByID obtiene un rol visible por ID.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// Update actualiza un rol.
func (uc *RoleUseCase) Update(actorID, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "update", "role", role.ID, role.Name)
	return toRoleResponse(role), nil
}

// List lista los roles visibles.
func (uc *RoleUseCase) List() ([]dto.RoleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return items, nil
}

// Delete marca el rol como no visible. Bloqueado mientras el rol tenga
// usuarios visibles asignados; el rol queda intacto en ese caso.
func (uc *RoleUseCase) Delete(actorID, id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	assigned, err := uc.userRepo.CountVisibleByRole(id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return domain.ErrHasDependents
	}
	if err := uc.repo.SoftDelete(id); err != nil {
		return err
	}
	recordEvent(uc.events, actorID, "delete", "role", id, role.Name)
	return nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
