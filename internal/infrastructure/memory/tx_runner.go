package memory

import (
	"context"
	"sync"

	"github.com/invorya/stockroom-api/internal/application/usecase"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner serializa los callbacks transaccionales sobre los repos en
// memoria. No hay rollback: el callback debe fallar antes de la primera
// escritura, igual que los casos de uso que lo consumen.
type TxRunner struct {
	mu         sync.Mutex
	categories *CategoryRepo
	items      *ItemRepo
}

// NewTxRunner construye el runner sobre los repos dados.
func NewTxRunner(categories *CategoryRepo, items *ItemRepo) *TxRunner {
	return &TxRunner{categories: categories, items: items}
}

// Run ejecuta fn bajo un lock global: ninguna otra "transacción" se
// intercala, lo que da la misma atomicidad chequeo+borrado que una tx de DB.
func (r *TxRunner) Run(_ context.Context, fn func(
	categories repository.CategoryRepository,
	items repository.ItemRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.categories, r.items)
}
