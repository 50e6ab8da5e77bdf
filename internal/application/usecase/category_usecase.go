package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/slug"
)

// CategoryUseCase casos de uso CRUD para categorías. El slug se regenera del
// name en un único punto del pipeline de escritura, nunca en hooks implícitos
// de la capa de persistencia.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	itemRepo repository.ItemRepository
	tx       TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, itemRepo repository.ItemRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, itemRepo: itemRepo, tx: tx}
}

// Create crea una categoría derivando el slug del name. Name y slug deben ser
// únicos; ante colisión el llamador debe elegir otro nombre (no se autosufija).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.Validationf("name (%q) es obligatorio y debe contener caracteres alfanuméricos", in.Name)
	}
	// Pre-chequeo para un 409 con mensaje claro; el índice único de la DB
	// sigue siendo el desempate ante escritores concurrentes.
	if existing, err := uc.repo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.repo.GetBySlug(s); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetBySlug obtiene una categoría por slug.
func (uc *CategoryUseCase) GetBySlug(s string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualiza parcialmente una categoría. Si cambia el name se regenera
// el slug y se verifica unicidad excluyendo el propio registro.
func (uc *CategoryUseCase) Update(currentSlug string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetBySlug(currentSlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != category.Name {
		newSlug := slug.Make(*in.Name)
		if newSlug == "" {
			return nil, domain.Validationf("name (%q) es obligatorio y debe contener caracteres alfanuméricos", *in.Name)
		}
		if other, err := uc.repo.GetByName(*in.Name); err != nil {
			return nil, err
		} else if other != nil && other.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
		if other, err := uc.repo.GetBySlug(newSlug); err != nil {
			return nil, err
		} else if other != nil && other.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
		category.Slug = newSlug
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría por slug. El conteo de artículos y el DELETE
// corren en una misma transacción; el constraint FK de la DB garantiza que el
// borrado falla si un artículo referencia la categoría al momento del commit.
func (uc *CategoryUseCase) Delete(ctx context.Context, s string) error {
	category, err := uc.repo.GetBySlug(s)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, items repository.ItemRepository) error {
		n, err := items.CountByCategory(category.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
		return categories.Delete(category.ID)
	})
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListItems lista los artículos de una categoría (por slug de la categoría).
func (uc *CategoryUseCase) ListItems(s string, page dto.PageRequest) (*dto.ItemListResponse, error) {
	category, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.itemRepo.ListByCategory(category.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
