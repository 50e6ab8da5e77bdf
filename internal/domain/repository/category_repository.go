package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Create y Update devuelven domain.ErrDuplicate ante violación del índice
// único de name o slug: el índice de la DB es el desempate real ante
// escritores concurrentes, el pre-chequeo del caso de uso solo mejora el
// mensaje de error.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	// Delete devuelve domain.ErrConflict si aún existen artículos que
	// referencian la categoría (constraint FK RESTRICT en la DB).
	Delete(id string) error
}
