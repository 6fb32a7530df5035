package ports

import (
	"context"

	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit. Cada caso de uso corre dentro de una
// sola llamada, lo que hace atómicos los check-then-insert y read-then-update.
//
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo conoce
// este contrato; PostgreSQL y el almacén en memoria lo implementan.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
	// RunReadOnly igual que Run pero en una transacción de solo lectura con snapshot estable
	// (el conteo y la página de una búsqueda ven los mismos datos).
	RunReadOnly(ctx context.Context, fn func(repos repository.Repositories) error) error
}
