package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/stock"
)

func TestCheck_ReorderMayorQueStock(t *testing.T) {
	err := stock.Check(1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	// El mensaje debe citar ambos valores.
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "1")
}

func TestCheck_ParesValidos(t *testing.T) {
	assert.NoError(t, stock.Check(5, 2))
	assert.NoError(t, stock.Check(3, 3), "reorder == stock es válido")
	assert.NoError(t, stock.Check(0, 0))
}

func TestCheck_Negativos(t *testing.T) {
	assert.ErrorIs(t, stock.Check(-1, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, stock.Check(5, -1), domain.ErrInvalidInput)
}
