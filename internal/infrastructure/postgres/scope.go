package postgres

import (
	"fmt"

	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// scopeFilter traduce el Scope del principal al predicado SQL de tenant. Es el
// punto único por el que pasa toda consulta sobre entidades de tenant:
//
//   - scope con organización efectiva: "organization_id = $pos"
//   - scope de plataforma sin objetivo: "organization_id IS NULL", que en tablas
//     con organization_id NOT NULL produce el conjunto vacío. El acceso
//     cross-tenant es opt-in explícito, nunca una consulta sin predicado.
//
// pos es la posición del siguiente placeholder libre en la consulta.
func scopeFilter(s tenancy.Scope, pos int) (cond string, args []any) {
	if org, ok := s.OrganizationID(); ok {
		return fmt.Sprintf("organization_id = $%d", pos), []any{org}
	}
	return "organization_id IS NULL", nil
}
