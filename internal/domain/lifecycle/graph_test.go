package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/domain/lifecycle"
)

// El orden completo es estable y derivado: toda colección aparece antes que las
// colecciones a las que referencia.
func TestFullOrder_OrdenEstable(t *testing.T) {
	want := []lifecycle.Collection{
		lifecycle.Notifications,
		lifecycle.Stock,
		lifecycle.PaymentTerms,
		lifecycle.Products,
		lifecycle.Customers,
		lifecycle.Vendors,
		lifecycle.Companies,
		lifecycle.Users,
		lifecycle.Organizations,
	}
	assert.Equal(t, want, lifecycle.FullOrder())
}

func TestFullOrder_DependientesAntesQueReferenciadas(t *testing.T) {
	order := lifecycle.FullOrder()
	pos := make(map[lifecycle.Collection]int, len(order))
	for i, c := range order {
		pos[c] = i
	}

	for _, c := range order {
		for _, ref := range lifecycle.References(c) {
			assert.Less(t, pos[c], pos[ref],
				"%s debe borrarse antes que %s, a la que referencia", c, ref)
		}
	}
}

func TestBusinessOrder_PreservaUsuariosYOrganizaciones(t *testing.T) {
	order := lifecycle.BusinessOrder()
	require.NotEmpty(t, order)

	assert.NotContains(t, order, lifecycle.Users)
	assert.NotContains(t, order, lifecycle.Organizations)

	// Mismo orden relativo que el completo, sólo sin las colecciones preservadas.
	want := []lifecycle.Collection{
		lifecycle.Notifications,
		lifecycle.Stock,
		lifecycle.PaymentTerms,
		lifecycle.Products,
		lifecycle.Customers,
		lifecycle.Vendors,
		lifecycle.Companies,
	}
	assert.Equal(t, want, order)
}

func TestFullOrder_DevuelveCopia(t *testing.T) {
	a := lifecycle.FullOrder()
	a[0] = lifecycle.Organizations
	assert.Equal(t, lifecycle.Notifications, lifecycle.FullOrder()[0],
		"mutar el slice devuelto no debe afectar al orden interno")
}
