package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx). Photos se guarda como text[].
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos.
// Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, slug, category_id, company, description,
	cost_price, min_profit_percent, max_profit_percent, sale_price_min, sale_price_max,
	stock, reorder_level, photos, created_at, updated_at`

// Create persiste un nuevo artículo. El índice único del slug desempata a
// escritores concurrentes; la FK de category_id exige una categoría existente.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Slug, item.CategoryID, item.Company, item.Description,
		item.CostPrice, item.MinProfitPercent, item.MaxProfitPercent, item.SalePriceMin, item.SalePriceMax,
		item.Stock, item.ReorderLevel, item.Photos, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getBy(`id = $1`, id)
}

// GetBySlug obtiene un artículo por slug.
func (r *ItemRepo) GetBySlug(slug string) (*entity.Item, error) {
	return r.getBy(`slug = $1`, slug)
}

func (r *ItemRepo) getBy(where string, arg any) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + where
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Name, &it.Slug, &it.CategoryID, &it.Company, &it.Description,
		&it.CostPrice, &it.MinProfitPercent, &it.MaxProfitPercent, &it.SalePriceMin, &it.SalePriceMax,
		&it.Stock, &it.ReorderLevel, &it.Photos, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza un artículo existente, incluidos los campos derivados ya
// recalculados por el caso de uso.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, slug = $3, category_id = $4, company = $5, description = $6,
			cost_price = $7, min_profit_percent = $8, max_profit_percent = $9,
			sale_price_min = $10, sale_price_max = $11, stock = $12, reorder_level = $13,
			photos = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Slug, item.CategoryID, item.Company, item.Description,
		item.CostPrice, item.MinProfitPercent, item.MaxProfitPercent,
		item.SalePriceMin, item.SalePriceMax, item.Stock, item.ReorderLevel,
		item.Photos, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista artículos con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return scanItems(rows)
}

// ListByCategory lista artículos de una categoría con paginación.
func (r *ItemRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE category_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items by category: %w", err)
	}
	return scanItems(rows)
}

// CountByCategory cuenta los artículos que referencian la categoría.
func (r *ItemRepo) CountByCategory(categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM items WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items by category: %w", err)
	}
	return n, nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Slug, &it.CategoryID, &it.Company, &it.Description,
			&it.CostPrice, &it.MinProfitPercent, &it.MaxProfitPercent, &it.SalePriceMin, &it.SalePriceMax,
			&it.Stock, &it.ReorderLevel, &it.Photos, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
