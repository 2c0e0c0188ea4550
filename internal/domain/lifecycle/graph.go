package lifecycle

import "sync"

// Collection identifica una colección de entidades sujeta a reset.
type Collection string

const (
	Notifications Collection = "notifications"
	Stock         Collection = "stock"
	PaymentTerms  Collection = "payment_terms"
	Products      Collection = "products"
	Customers     Collection = "customers"
	Vendors       Collection = "vendors"
	Companies     Collection = "companies"
	Users         Collection = "users"
	Organizations Collection = "organizations"
)

// declarations es el grafo estático de dependencias: cada colección declara a
// qué colecciones referencia (FKs). Añadir una familia de entidades nueva es
// declararla aquí; el orden de borrado se deriva solo, nunca se re-audita a mano.
var declarations = []struct {
	col  Collection
	refs []Collection
}{
	{Notifications, []Collection{Users}},
	{Stock, []Collection{Products, Companies}},
	{PaymentTerms, []Collection{Vendors, Customers}},
	{Products, []Collection{Vendors}},
	{Customers, []Collection{Companies}},
	{Vendors, []Collection{Companies}},
	{Companies, []Collection{Organizations}},
	{Users, []Collection{Organizations}},
	{Organizations, nil},
}

var (
	orderOnce sync.Once
	fullOrder []Collection
)

// FullOrder devuelve el orden topológico completo de borrado: toda colección
// aparece antes que las colecciones a las que referencia. Se calcula una sola
// vez; con empate decide el orden de declaración, así el resultado es estable.
func FullOrder() []Collection {
	orderOnce.Do(func() {
		fullOrder = computeOrder()
	})
	out := make([]Collection, len(fullOrder))
	copy(out, fullOrder)
	return out
}

// BusinessOrder devuelve el orden de borrado restringido a los datos operativos
// de un tenant: excluye users y organizations, que el reset de negocio preserva.
func BusinessOrder() []Collection {
	var out []Collection
	for _, c := range FullOrder() {
		if c == Users || c == Organizations {
			continue
		}
		out = append(out, c)
	}
	return out
}

// References devuelve las colecciones que referencia c (copia del grafo declarado).
func References(c Collection) []Collection {
	for _, d := range declarations {
		if d.col == c {
			return append([]Collection(nil), d.refs...)
		}
	}
	return nil
}

// computeOrder aplica Kahn sobre el grafo declarado: una colección está lista
// cuando ya se emitieron todas las que la referencian.
func computeOrder() []Collection {
	pending := make(map[Collection]int, len(declarations)) // dependientes sin emitir
	for _, d := range declarations {
		if _, ok := pending[d.col]; !ok {
			pending[d.col] = 0
		}
		for _, ref := range d.refs {
			pending[ref]++
		}
	}

	emitted := make(map[Collection]bool, len(declarations))
	order := make([]Collection, 0, len(declarations))
	for len(order) < len(declarations) {
		progress := false
		for _, d := range declarations {
			if emitted[d.col] || pending[d.col] != 0 {
				continue
			}
			emitted[d.col] = true
			order = append(order, d.col)
			for _, ref := range d.refs {
				pending[ref]--
			}
			progress = true
			break
		}
		if !progress {
			// Ciclo en las declaraciones: error de programación, no de runtime.
			panic("lifecycle: ciclo en el grafo de dependencias de colecciones")
		}
	}
	return order
}
