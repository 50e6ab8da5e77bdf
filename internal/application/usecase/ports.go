package usecase

import (
	"context"
	"io"

	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// El borrado de categoría lo usa para que el conteo de artículos y el DELETE
// se resuelvan atómicamente en la capa de almacenamiento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		items repository.ItemRepository,
	) error) error
}

// PhotoUpload una foto entrante (nombre original + contenido).
type PhotoUpload struct {
	Filename string
	Reader   io.Reader
}

// PhotoStore guarda el binario de una foto y devuelve la URI opaca con la que
// se referencia desde el artículo.
type PhotoStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
