package tenancy

import (
	"strconv"
	"strings"
)

// HeaderOrganizationID es el header explícito de tenant que gana a cualquier
// otra señal de resolución.
const HeaderOrganizationID = "X-Organization-ID"

// Fuentes posibles de un candidato de resolución.
const (
	SourceHeader    = "header"
	SourceSubdomain = "subdomain"
	SourcePath      = "path"
	SourceNone      = ""
)

// Subdominios reservados que nunca identifican a un tenant.
var reservedSubdomains = map[string]struct{}{
	"www":    {},
	"api":    {},
	"admin":  {},
	"app":    {},
	"static": {},
}

// Candidate es el resultado de la resolución pura: de dónde salió la señal y el
// identificador sin validar contra el directorio de organizaciones.
type Candidate struct {
	Source    string
	ID        int64  // para header y path
	Subdomain string // para subdomain
}

// IsZero indica que ninguna señal produjo candidato.
func (c Candidate) IsZero() bool { return c.Source == SourceNone }

// ResolveCandidate aplica la precedencia fija: header explícito, subdominio del
// host, segmento numérico del path. Primera señal válida gana; dos señales en
// conflicto no son error (el header decide). Un header no numérico se ignora y
// se sigue con la siguiente regla, jamás se toma como válido.
func ResolveCandidate(headerValue, host, path string) Candidate {
	if id, ok := parseOrgID(headerValue); ok {
		return Candidate{Source: SourceHeader, ID: id}
	}
	if sub, ok := subdomainFromHost(host); ok {
		return Candidate{Source: SourceSubdomain, Subdomain: sub}
	}
	if id, ok := orgIDFromPath(path); ok {
		return Candidate{Source: SourcePath, ID: id}
	}
	return Candidate{}
}

// parseOrgID interpreta un identificador de organización como entero positivo.
func parseOrgID(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// subdomainFromHost extrae el primer label del host como subdominio de tenant.
// Se exige al menos subdominio.dominio.tld y se excluyen labels reservados.
func subdomainFromHost(host string) (string, bool) {
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	parts := strings.Split(host, ".")
	if len(parts) < 3 || parts[0] == "" {
		return "", false
	}
	sub := strings.ToLower(parts[0])
	if _, reserved := reservedSubdomains[sub]; reserved {
		return "", false
	}
	return sub, true
}

// orgIDFromPath reconoce el patrón /.../organizations/{id}/... y devuelve el id
// numérico que sigue al segmento "organizations".
func orgIDFromPath(path string) (int64, bool) {
	path = strings.Trim(path, "/")
	if path == "" {
		return 0, false
	}
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "organizations" || i+1 >= len(parts) {
			continue
		}
		if id, ok := parseOrgID(parts[i+1]); ok {
			return id, true
		}
	}
	return 0, false
}
