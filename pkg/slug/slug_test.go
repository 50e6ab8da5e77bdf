package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/stockroom-api/pkg/slug"
)

func TestMake_CasosBasicos(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minúsculas simples", "Beverages", "beverages"},
		{"espacios a guiones", "Cold Beverages", "cold-beverages"},
		{"separadores múltiples colapsan", "Cold   &  Hot!! Drinks", "cold-hot-drinks"},
		{"guiones en extremos se recortan", "  --Snacks-- ", "snacks"},
		{"tildes y eñes", "Añejo Café", "anejo-cafe"},
		{"números se conservan", "Zona 3 Norte", "zona-3-norte"},
		{"solo símbolos queda vacío", "!!! $$$", ""},
		{"cadena vacía queda vacía", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

// El slug es una función pura del nombre: llamadas repetidas producen el mismo valor.
func TestMake_Determinista(t *testing.T) {
	in := "Gaseosas & Jugos Día"
	first := slug.Make(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, slug.Make(in))
	}
}
