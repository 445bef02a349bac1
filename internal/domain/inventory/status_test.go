package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/inventory"
)

// TestStatusFor_Umbrales valida los tres estados derivados del disponible,
// incluyendo los bordes exactos: 0 es agotado, 9 es bajo, 10 ya es disponible.
func TestStatusFor_Umbrales(t *testing.T) {
	cases := []struct {
		nombre    string
		available int
		esperado  string
	}{
		{"negativo es agotado", -5, entity.InventoryStatusOutOfStock},
		{"cero es agotado", 0, entity.InventoryStatusOutOfStock},
		{"uno es stock bajo", 1, entity.InventoryStatusLowStock},
		{"nueve es stock bajo", 9, entity.InventoryStatusLowStock},
		{"diez es disponible", 10, entity.InventoryStatusInStock},
		{"abundante es disponible", 145, entity.InventoryStatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.esperado, inventory.StatusFor(tc.available))
		})
	}
}

// TestStatusOf_DescuentaComprometido verifica que el estado se calcula sobre
// OnHand - Committed, no sobre el stock físico.
func TestStatusOf_DescuentaComprometido(t *testing.T) {
	// 40 en bodega pero todo comprometido: agotado.
	nivel := entity.InventoryLevel{ItemCode: "LUB-COOL-HD", OnHand: 40, Committed: 40}
	assert.Equal(t, entity.InventoryStatusOutOfStock, inventory.StatusOf(nivel))

	// 24 en bodega, 15 comprometidos: quedan 9, stock bajo.
	nivel = entity.InventoryLevel{ItemCode: "LUB-GEAR-220", OnHand: 24, Committed: 15}
	assert.Equal(t, entity.InventoryStatusLowStock, inventory.StatusOf(nivel))
}
