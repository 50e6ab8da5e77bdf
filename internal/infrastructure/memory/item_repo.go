package memory

import (
	"sync"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo repositorio de artículos en memoria.
type ItemRepo struct {
	mu     sync.Mutex
	byID   map[string]entity.Item
	bySlug map[string]string // slug -> id (índice único)
}

// NewItemRepository construye el repositorio vacío.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{
		byID:   make(map[string]entity.Item),
		bySlug: make(map[string]string),
	}
}

// Create inserta respetando el índice único del slug.
func (r *ItemRepo) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySlug[item.Slug]; ok {
		return domain.ErrDuplicate
	}
	r.byID[item.ID] = cloneItem(item)
	r.bySlug[item.Slug] = item.ID
	return nil
}

// GetByID obtiene un artículo por ID (nil si no existe).
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := cloneItem(&it)
	return &out, nil
}

// GetBySlug obtiene un artículo por slug (nil si no existe).
func (r *ItemRepo) GetBySlug(slug string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.bySlug[slug]
	if !ok {
		return nil, nil
	}
	it := r.byID[id]
	out := cloneItem(&it)
	return &out, nil
}

// Update reemplaza el artículo y reindexa el slug respetando unicidad.
func (r *ItemRepo) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if id, ok := r.bySlug[item.Slug]; ok && id != item.ID {
		return domain.ErrDuplicate
	}
	delete(r.bySlug, prev.Slug)
	r.byID[item.ID] = cloneItem(item)
	r.bySlug[item.Slug] = item.ID
	return nil
}

// List lista artículos con paginación (orden no garantizado).
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Item, 0, len(r.byID))
	for _, it := range r.byID {
		out := cloneItem(&it)
		all = append(all, &out)
	}
	return paginate(all, limit, offset), nil
}

// ListByCategory lista artículos de una categoría.
func (r *ItemRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Item
	for _, it := range r.byID {
		if it.CategoryID == categoryID {
			out := cloneItem(&it)
			all = append(all, &out)
		}
	}
	return paginate(all, limit, offset), nil
}

// CountByCategory cuenta los artículos que referencian la categoría.
func (r *ItemRepo) CountByCategory(categoryID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.byID {
		if it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// Delete elimina por ID.
func (r *ItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	delete(r.bySlug, it.Slug)
	return nil
}

// cloneItem copia el slice de fotos para que el llamador no comparta memoria
// con el almacén.
func cloneItem(it *entity.Item) entity.Item {
	out := *it
	if it.Photos != nil {
		out.Photos = append([]string(nil), it.Photos...)
	}
	return out
}
