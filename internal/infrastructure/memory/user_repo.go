package memory

import (
	"sync"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu      sync.Mutex
	byID    map[string]entity.User
	byEmail map[string]string // email -> id (índice único)
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
	}
}

// Create inserta respetando el índice único del email.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

// GetByID obtiene un usuario por ID (nil si no existe).
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

// GetByEmail obtiene un usuario por email (nil si no existe).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	return &u, nil
}

// Update reemplaza el usuario y reindexa el email respetando unicidad.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if id, ok := r.byEmail[user.Email]; ok && id != user.ID {
		return domain.ErrEmailAlreadyExists
	}
	delete(r.byEmail, prev.Email)
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

// List lista usuarios con paginación (orden no garantizado).
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out := u
		all = append(all, &out)
	}
	return paginate(all, limit, offset), nil
}

// Delete elimina por ID.
func (r *UserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}
