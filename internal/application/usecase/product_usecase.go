package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock actual es
// derivado y se maneja vía movimientos; aquí solo datos maestros.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
	events    repository.EventLogRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository, events repository.EventLogRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, events: events}
}

// Create crea un nuevo producto. Precio estimado y stock mínimo no admiten negativos.
func (uc *ProductUseCase) Create(actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.UnitID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EstimatedPrice.LessThan(decimal.Zero) || in.MinimumStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		CategoryID:     in.CategoryID,
		UnitID:         in.UnitID,
		EstimatedPrice: in.EstimatedPrice,
		MinimumStock:   in.MinimumStock,
		Visible:        true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "create", "product", product.ID, product.Name)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto visible por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El stock no se toca aquí (se maneja vía movimientos).
func (uc *ProductUseCase) Update(actorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.EstimatedPrice != nil {
		if in.EstimatedPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.EstimatedPrice = *in.EstimatedPrice
	}
	if in.MinimumStock != nil {
		if in.MinimumStock.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.MinimumStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	recordEvent(uc.events, actorID, "update", "product", product.ID, product.Name)
	return toProductResponse(product), nil
}

// List lista productos visibles con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete marca el producto como no visible. Bloqueado mientras el producto
// tenga stock distinto de cero (pre-check explícito, no constraint de DB).
func (uc *ProductUseCase) Delete(actorID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	stock, err := uc.stockRepo.CurrentStock(id)
	if err != nil {
		return err
	}
	if !stock.IsZero() {
		return domain.ErrHasDependents
	}
	if err := uc.repo.SoftDelete(id); err != nil {
		return err
	}
	recordEvent(uc.events, actorID, "delete", "product", id, product.Name)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		Category:       p.CategoryName,
		UnitID:         p.UnitID,
		Unit:           p.UnitName,
		EstimatedPrice: p.EstimatedPrice,
		MinimumStock:   p.MinimumStock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
