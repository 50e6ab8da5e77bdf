// Package stock valida la consistencia stock / nivel de reposición
// (servicio de dominio).
package stock

import "github.com/invorya/stockroom-api/internal/domain"

// Check valida el par resultante tras aplicar una actualización: ambos valores
// no negativos y reorderLevel <= stock. Si la actualización es parcial, el
// llamador combina el campo recibido con el valor almacenado del otro antes de
// invocar.
func Check(stock, reorderLevel int) error {
	if stock < 0 {
		return domain.Validationf("stock (%d) no puede ser negativo", stock)
	}
	if reorderLevel < 0 {
		return domain.Validationf("reorder_level (%d) no puede ser negativo", reorderLevel)
	}
	if reorderLevel > stock {
		return domain.Validationf("reorder_level (%d) no puede exceder el stock actual (%d)", reorderLevel, stock)
	}
	return nil
}
