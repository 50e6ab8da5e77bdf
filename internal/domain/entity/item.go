package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxPhotos máximo de fotos por artículo.
const MaxPhotos = 5

// DefaultCompany proveedor por defecto cuando no se indica.
const DefaultCompany = "Unknown"

// Item representa un artículo del inventario. SalePriceMin y SalePriceMax son
// campos derivados: se recalculan de CostPrice y los porcentajes de ganancia
// vigentes tras cada escritura, nunca los fija el cliente.
type Item struct {
	ID               string
	Name             string
	Slug             string // único, derivado del Name vigente
	CategoryID       string // debe resolver a una Category existente
	Company          string
	Description      string
	CostPrice        decimal.Decimal
	MinProfitPercent decimal.Decimal
	MaxProfitPercent decimal.Decimal
	SalePriceMin     decimal.Decimal // derivado
	SalePriceMax     decimal.Decimal // derivado
	Stock            int
	ReorderLevel     int // <= Stock en todo momento
	Photos           []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
