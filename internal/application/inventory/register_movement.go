package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/kardex"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del kardex de forma
// transaccional (ENTRADA, SALIDA, AJUSTE) con bloqueo de fila
// (SELECT FOR UPDATE) sobre los renglones de stock del producto.
//
// Los snapshots balance_before/balance_after se calculan y persisten aquí, al
// momento de escribir; el kardex de lectura confía en ellos.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	containerRepo repository.ContainerRepository
	events        repository.EventLogRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	containerRepo repository.ContainerRepository,
	events repository.EventLogRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		containerRepo: containerRepo,
		events:        events,
	}
}

// Register valida la entrada, inicia la transacción, bloquea los renglones de
// stock del producto, calcula los snapshots de balance y persiste el
// movimiento junto con la actualización del renglón afectado.
//
// ENTRADA/SALIDA: Quantity es la magnitud del cambio (positiva).
// AJUSTE: Quantity es el balance absoluto que queda tras la corrección.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.ContainerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.MovementKindAdjust && in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	container, err := uc.containerRepo.GetByID(in.ContainerID)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created *entity.Movement

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea todos los renglones de stock del producto: el balance del
		// kardex es a nivel de producto, no de contenedor.
		details, err := stockRepo.ListForUpdateByProduct(in.ProductID)
		if err != nil {
			return err
		}
		before := decimal.Zero
		var target *entity.StockDetail
		for _, d := range details {
			before = before.Add(d.Quantity)
			if d.ContainerID == in.ContainerID {
				target = d
			}
		}
		if target == nil {
			target = &entity.StockDetail{
				ID:          uuid.New().String(),
				ProductID:   in.ProductID,
				ContainerID: in.ContainerID,
				Quantity:    decimal.Zero,
				Visible:     true,
			}
		}

		mov := &entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     in.ProductID,
			Kind:          in.Kind,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice,
			DocumentRef:   in.DocumentRef,
			Note:          in.Note,
			BalanceBefore: before,
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		containerID := in.ContainerID
		mov.ContainerID = &containerID
		if in.ReasonID != "" {
			reasonID := in.ReasonID
			mov.ReasonID = &reasonID
		}
		mov.BalanceAfter = kardex.ExpectedBalanceAfter(before, mov)

		switch in.Kind {
		case entity.MovementKindEntry:
			target.Quantity = target.Quantity.Add(in.Quantity)
		case entity.MovementKindExit:
			if before.LessThan(in.Quantity) || target.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			target.Quantity = target.Quantity.Sub(in.Quantity)
		case entity.MovementKindAdjust:
			// El delta de la corrección se aplica completo al renglón indicado.
			delta := mov.BalanceAfter.Sub(before)
			target.Quantity = target.Quantity.Add(delta)
			if target.Quantity.LessThan(decimal.Zero) {
				return domain.ErrInsufficientStock
			}
		}

		target.UpdatedAt = now
		if err := stockRepo.Upsert(target); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordEvent(userID, created)
	return toMovementResponse(created), nil
}

func (uc *RegisterMovementUseCase) recordEvent(userID string, mov *entity.Movement) {
	if uc.events == nil {
		return
	}
	_ = uc.events.Record(&entity.EventLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    "movement",
		Entity:    "movement",
		EntityID:  mov.ID,
		Detail:    mov.Kind + " " + mov.Quantity.String(),
		CreatedAt: time.Now(),
	})
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	resp := &dto.MovementResponse{
		ID:             m.ID,
		Kind:           m.Kind,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		BalanceBefore:  m.BalanceBefore,
		RunningBalance: m.BalanceAfter,
		Reason:         m.ReasonName,
		DocumentRef:    m.DocumentRef,
		Note:           m.Note,
		Date:           m.Date,
		CreatedBy:      m.CreatedBy,
	}
	if m.ContainerID != nil {
		resp.ContainerID = *m.ContainerID
	}
	return resp
}
