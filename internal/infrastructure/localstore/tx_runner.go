package localstore

import (
	"context"
	"sync"

	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las unidades de trabajo sobre el almacén: el modelo asume un único
// escritor y el servidor HTTP atiende peticiones concurrentes.
type TxRunner struct {
	mu sync.Mutex
}

// NewTxRunner construye el runner.
func NewTxRunner() *TxRunner {
	return &TxRunner{}
}

// Run ejecuta fn con el almacén bloqueado. No es reentrante.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
