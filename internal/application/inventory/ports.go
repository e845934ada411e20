package inventory

import (
	"context"

	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción de la base de datos,
// con repositorios atados a esa transacción. Commit si fn retorna nil,
// Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
