// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Reproduce el contrato de los adaptadores de PostgreSQL, incluidos
// los índices únicos resueltos atómicamente bajo el lock: el perdedor de una
// carrera de escritura recibe el mismo error que daría la DB. Se usa en tests
// y para correr la API sin base de datos.
package memory

import (
	"sync"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo repositorio de categorías en memoria.
type CategoryRepo struct {
	mu     sync.Mutex
	byID   map[string]entity.Category
	byName map[string]string // name -> id (índice único)
	bySlug map[string]string // slug -> id (índice único)
}

// NewCategoryRepository construye el repositorio vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{
		byID:   make(map[string]entity.Category),
		byName: make(map[string]string),
		bySlug: make(map[string]string),
	}
}

// Create inserta respetando los índices únicos de name y slug. El chequeo y
// la inserción ocurren bajo el mismo lock, igual que el unique index de la DB.
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[category.Name]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.bySlug[category.Slug]; ok {
		return domain.ErrDuplicate
	}
	r.byID[category.ID] = *category
	r.byName[category.Name] = category.ID
	r.bySlug[category.Slug] = category.ID
	return nil
}

// GetByID obtiene una categoría por ID (nil si no existe).
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

// GetBySlug obtiene una categoría por slug (nil si no existe).
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.bySlug[slug]
	if !ok {
		return nil, nil
	}
	c := r.byID[id]
	return &c, nil
}

// GetByName obtiene una categoría por name (nil si no existe).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byName[name]
	if !ok {
		return nil, nil
	}
	c := r.byID[id]
	return &c, nil
}

// Update reemplaza la categoría y reindexa name/slug respetando unicidad.
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[category.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if id, ok := r.byName[category.Name]; ok && id != category.ID {
		return domain.ErrDuplicate
	}
	if id, ok := r.bySlug[category.Slug]; ok && id != category.ID {
		return domain.ErrDuplicate
	}
	delete(r.byName, prev.Name)
	delete(r.bySlug, prev.Slug)
	r.byID[category.ID] = *category
	r.byName[category.Name] = category.ID
	r.bySlug[category.Slug] = category.ID
	return nil
}

// List lista categorías con paginación (orden no garantizado).
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out := c
		all = append(all, &out)
	}
	return paginate(all, limit, offset), nil
}

// Delete elimina por ID.
func (r *CategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	delete(r.byName, c.Name)
	delete(r.bySlug, c.Slug)
	return nil
}

func paginate[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
