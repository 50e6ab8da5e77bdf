package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. Slug, SalePriceMin y
// SalePriceMax son derivados: el servidor los calcula, el cliente no los envía.
type CreateItemRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"` // ID de la categoría
	Company          string          `json:"company"`
	Description      string          `json:"description"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	MinProfitPercent decimal.Decimal `json:"min_profit_percent"`
	MaxProfitPercent decimal.Decimal `json:"max_profit_percent"`
	Stock            *int            `json:"stock"`         // default 0
	ReorderLevel     *int            `json:"reorder_level"` // default 1
	Photos           []string        `json:"photos"`
}

// UpdateItemRequest actualización parcial: solo los campos presentes cambian.
// Los derivados se recalculan con los valores resultantes.
type UpdateItemRequest struct {
	Name             *string          `json:"name"`
	Category         *string          `json:"category"`
	Company          *string          `json:"company"`
	Description      *string          `json:"description"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	MinProfitPercent *decimal.Decimal `json:"min_profit_percent"`
	MaxProfitPercent *decimal.Decimal `json:"max_profit_percent"`
	Stock            *int             `json:"stock"`
	ReorderLevel     *int             `json:"reorder_level"`
	Photos           []string         `json:"photos"`
}

// ItemResponse salida de un artículo. slug y sale_price_min/max son de solo
// lectura para el cliente.
type ItemResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Category         string          `json:"category"`
	Company          string          `json:"company"`
	Description      string          `json:"description"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	MinProfitPercent decimal.Decimal `json:"min_profit_percent"`
	MaxProfitPercent decimal.Decimal `json:"max_profit_percent"`
	SalePriceMin     decimal.Decimal `json:"sale_price_min"`
	SalePriceMax     decimal.Decimal `json:"sale_price_max"`
	Stock            int             `json:"stock"`
	ReorderLevel     int             `json:"reorder_level"`
	Photos           []string        `json:"photos"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
