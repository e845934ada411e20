package usecase

import (
	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// CatalogUseCase lecturas de catálogos: categorías, unidades y motivos.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Categories lista las categorías visibles.
func (uc *CatalogUseCase) Categories() ([]dto.CatalogItemDTO, error) {
	list, err := uc.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemDTO, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CatalogItemDTO{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// Units lista las unidades de medida visibles.
func (uc *CatalogUseCase) Units() ([]dto.CatalogItemDTO, error) {
	list, err := uc.repo.ListUnits()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemDTO, 0, len(list))
	for _, u := range list {
		name := u.Name
		if u.Abbreviation != "" {
			name = u.Name + " (" + u.Abbreviation + ")"
		}
		items = append(items, dto.CatalogItemDTO{ID: u.ID, Name: name})
	}
	return items, nil
}

// MovementReasons lista los motivos de movimiento visibles.
func (uc *CatalogUseCase) MovementReasons() ([]dto.CatalogItemDTO, error) {
	list, err := uc.repo.ListMovementReasons()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemDTO, 0, len(list))
	for _, r := range list {
		items = append(items, dto.CatalogItemDTO{ID: r.ID, Name: r.Name, Kind: r.Kind})
	}
	return items, nil
}
