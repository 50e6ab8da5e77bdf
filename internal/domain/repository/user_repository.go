package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create devuelve domain.ErrEmailAlreadyExists ante violación del índice
// único del email.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
