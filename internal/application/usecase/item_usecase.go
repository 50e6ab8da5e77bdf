package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/pricing"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/internal/domain/stock"
	"github.com/invorya/stockroom-api/pkg/slug"
)

// ItemUseCase casos de uso CRUD para artículos. Todas las escrituras pasan por
// el mismo pipeline de invariantes (slug -> precios -> stock -> fotos) en
// validateDerived, en ese orden fijo, antes de delegar una única escritura
// atómica al repositorio.
type ItemUseCase struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
	photos       PhotoStore
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, categoryRepo repository.CategoryRepository, photos PhotoStore) *ItemUseCase {
	return &ItemUseCase{repo: repo, categoryRepo: categoryRepo, photos: photos}
}

// validateDerived corre los invariantes de dominio sobre el estado resultante
// del artículo y recalcula los campos derivados. Es el único punto donde se
// fijan Slug, SalePriceMin y SalePriceMax.
func (uc *ItemUseCase) validateDerived(item *entity.Item) error {
	s := slug.Make(item.Name)
	if s == "" {
		return domain.Validationf("name (%q) es obligatorio y debe contener caracteres alfanuméricos", item.Name)
	}
	item.Slug = s

	if err := pricing.Validate(item.CostPrice, item.MinProfitPercent, item.MaxProfitPercent); err != nil {
		return err
	}
	item.SalePriceMin, item.SalePriceMax = pricing.SalePriceBounds(item.CostPrice, item.MinProfitPercent, item.MaxProfitPercent)

	if err := stock.Check(item.Stock, item.ReorderLevel); err != nil {
		return err
	}
	if len(item.Photos) > entity.MaxPhotos {
		return domain.Validationf("un artículo admite máximo %d fotos (recibidas %d)", entity.MaxPhotos, len(item.Photos))
	}
	return nil
}

// resolveCategory verifica que la categoría referenciada exista.
func (uc *ItemUseCase) resolveCategory(id string) error {
	if id == "" {
		return domain.Validationf("category es obligatoria")
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Create crea un artículo. La categoría debe existir, el slug derivado debe
// ser único y los derivados de precio se calculan del triple recibido.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := uc.resolveCategory(in.Category); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.Item{
		ID:               uuid.New().String(),
		Name:             in.Name,
		CategoryID:       in.Category,
		Company:          in.Company,
		Description:      in.Description,
		CostPrice:        in.CostPrice,
		MinProfitPercent: in.MinProfitPercent,
		MaxProfitPercent: in.MaxProfitPercent,
		Stock:            0,
		ReorderLevel:     1,
		Photos:           in.Photos,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if item.Company == "" {
		item.Company = entity.DefaultCompany
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	} else if item.ReorderLevel > item.Stock {
		// El default de reorder_level se recorta al stock inicial; un valor
		// enviado por el cliente nunca se recorta, falla la validación.
		item.ReorderLevel = item.Stock
	}

	if err := uc.validateDerived(item); err != nil {
		return nil, err
	}
	// Pre-chequeo de unicidad del slug; la DB desempata a concurrentes.
	if existing, err := uc.repo.GetBySlug(item.Slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetBySlug obtiene un artículo por slug.
func (uc *ItemUseCase) GetBySlug(s string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualiza parcialmente un artículo: solo los campos recibidos
// cambian y los invariantes se evalúan sobre el par/triple resultante.
func (uc *ItemUseCase) Update(currentSlug string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySlug(currentSlug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Category != nil && *in.Category != item.CategoryID {
		if err := uc.resolveCategory(*in.Category); err != nil {
			return nil, err
		}
		item.CategoryID = *in.Category
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Company != nil {
		item.Company = *in.Company
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.CostPrice != nil {
		item.CostPrice = *in.CostPrice
	}
	if in.MinProfitPercent != nil {
		item.MinProfitPercent = *in.MinProfitPercent
	}
	if in.MaxProfitPercent != nil {
		item.MaxProfitPercent = *in.MaxProfitPercent
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.Photos != nil {
		item.Photos = in.Photos
	}

	if err := uc.validateDerived(item); err != nil {
		return nil, err
	}
	if item.Slug != currentSlug {
		if other, err := uc.repo.GetBySlug(item.Slug); err != nil {
			return nil, err
		} else if other != nil && other.ID != item.ID {
			return nil, domain.ErrDuplicate
		}
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// AddPhotos guarda las fotos recibidas y las agrega al artículo respetando el
// máximo de cinco entre existentes y nuevas.
func (uc *ItemUseCase) AddPhotos(ctx context.Context, currentSlug string, uploads []PhotoUpload) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySlug(currentSlug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if len(uploads) == 0 {
		return nil, domain.Validationf("se requiere al menos una foto")
	}
	if len(item.Photos)+len(uploads) > entity.MaxPhotos {
		return nil, domain.Validationf("un artículo admite máximo %d fotos (tiene %d, recibidas %d)",
			entity.MaxPhotos, len(item.Photos), len(uploads))
	}
	for _, up := range uploads {
		uri, err := uc.photos.Save(ctx, up.Filename, up.Reader)
		if err != nil {
			return nil, err
		}
		item.Photos = append(item.Photos, uri)
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos con paginación.
func (uc *ItemUseCase) List(page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
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

// Delete elimina un artículo por slug.
func (uc *ItemUseCase) Delete(s string) error {
	item, err := uc.repo.GetBySlug(s)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(item.ID)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	photos := it.Photos
	if photos == nil {
		photos = []string{}
	}
	return &dto.ItemResponse{
		ID:               it.ID,
		Name:             it.Name,
		Slug:             it.Slug,
		Category:         it.CategoryID,
		Company:          it.Company,
		Description:      it.Description,
		CostPrice:        it.CostPrice,
		MinProfitPercent: it.MinProfitPercent,
		MaxProfitPercent: it.MaxProfitPercent,
		SalePriceMin:     it.SalePriceMin,
		SalePriceMax:     it.SalePriceMax,
		Stock:            it.Stock,
		ReorderLevel:     it.ReorderLevel,
		Photos:           photos,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}
