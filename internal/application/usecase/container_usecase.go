package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// ContainerUseCase casos de uso CRUD para contenedores de almacenamiento.
type ContainerUseCase struct {
	repo      repository.ContainerRepository
	stockRepo repository.StockRepository
	events    repository.EventLogRepository
}

// NewContainerUseCase construye el caso de uso.
func NewContainerUseCase(repo repository.ContainerRepository, stockRepo repository.StockRepository, events repository.EventLogRepository) *ContainerUseCase {
	return &ContainerUseCase{repo: repo, stockRepo: stockRepo, events: events}
}

// Create crea un nuevo contenedor.
func (uc *ContainerUseCase) Create(actorID string, in dto.CreateContainerRequest) (*dto.ContainerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	container := &entity.Container{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		Visible:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(container); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "create", "container", container.ID, container.Name)
	return toContainerResponse(container), nil
}

// GetByID obtiene un contenedor visible por ID.
func (uc *ContainerUseCase) GetByID(id string) (*dto.ContainerResponse, error) {
	container, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, nil
	}
	return toContainerResponse(container), nil
}

// Update actualiza un contenedor.
func (uc *ContainerUseCase) Update(actorID, id string, in dto.UpdateContainerRequest) (*dto.ContainerResponse, error) {
	container, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		container.Name = *in.Name
	}
	if in.Location != nil {
		container.Location = *in.Location
	}
	if in.Description != nil {
		container.Description = *in.Description
	}
	container.UpdatedAt = time.Now()
	if err := uc.repo.Update(container); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "update", "container", container.ID, container.Name)
	return toContainerResponse(container), nil
}

// List lista contenedores visibles con paginación.
func (uc *ContainerUseCase) List(limit, offset int) (*dto.ContainerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContainerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContainerResponse(c))
	}
	return &dto.ContainerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete marca el contenedor como no visible. Bloqueado mientras almacene
// stock distinto de cero.
func (uc *ContainerUseCase) Delete(actorID, id string) error {
	container, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if container == nil {
		return domain.ErrNotFound
	}
	active, err := uc.stockRepo.CountActiveByContainer(id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrHasDependents
	}
	if err := uc.repo.SoftDelete(id); err != nil {
		return err
	}
	recordEvent(uc.events, actorID, "delete", "container", id, container.Name)
	return nil
}

func toContainerResponse(c *entity.Container) *dto.ContainerResponse {
	if c == nil {
		return nil
	}
	return &dto.ContainerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
