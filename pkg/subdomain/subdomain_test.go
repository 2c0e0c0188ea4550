package subdomain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/multiempresa-api/pkg/subdomain"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Acme":             "acme",
		"Café Rincón":      "cafe-rincon",
		"  Mi Empresa  ":   "mi-empresa",
		"ACME S.A.S.":      "acme-s-a-s",
		"tienda_la_20":     "tienda-la-20",
		"ñandú":            "nandu",
		"--ya-normalizado": "ya-normalizado",
	}
	for in, want := range cases {
		assert.Equal(t, want, subdomain.Normalize(in), "Normalize(%q)", in)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, subdomain.Valid("acme"))
	assert.True(t, subdomain.Valid("tienda-la-20"))

	assert.False(t, subdomain.Valid(""))
	assert.False(t, subdomain.Valid("-acme"))
	assert.False(t, subdomain.Valid("acme-"))
	assert.False(t, subdomain.Valid("Acme"))
	assert.False(t, subdomain.Valid("con espacios"))
}
