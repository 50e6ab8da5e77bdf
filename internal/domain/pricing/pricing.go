// Package pricing deriva los límites de precio de venta a partir del costo y
// del rango de porcentaje de ganancia (servicio de dominio).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/invorya/stockroom-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Validate verifica el triple costo/ganancia antes de cualquier persistencia:
// los tres valores no negativos y minPercent <= maxPercent.
func Validate(cost, minPercent, maxPercent decimal.Decimal) error {
	if cost.IsNegative() {
		return domain.Validationf("cost_price (%s) no puede ser negativo", cost)
	}
	if minPercent.IsNegative() || maxPercent.IsNegative() {
		return domain.Validationf("los porcentajes de ganancia (%s, %s) no pueden ser negativos", minPercent, maxPercent)
	}
	if maxPercent.LessThan(minPercent) {
		return domain.Validationf("max_profit_percent (%s) no puede ser menor que min_profit_percent (%s)", maxPercent, minPercent)
	}
	return nil
}

// SalePriceBounds calcula los límites derivados del precio de venta:
//
//	min = cost * (1 + minPercent/100)
//	max = cost * (1 + maxPercent/100)
//
// Siempre se invoca con el triple resultante tras aplicar la actualización,
// nunca con valores almacenados obsoletos.
func SalePriceBounds(cost, minPercent, maxPercent decimal.Decimal) (min, max decimal.Decimal) {
	one := decimal.NewFromInt(1)
	min = cost.Mul(one.Add(minPercent.Div(hundred)))
	max = cost.Mul(one.Add(maxPercent.Div(hundred)))
	return min, max
}
