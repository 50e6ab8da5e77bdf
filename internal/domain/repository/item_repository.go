package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Create y Update devuelven domain.ErrDuplicate ante violación del índice
// único del slug.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySlug(slug string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Item, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
