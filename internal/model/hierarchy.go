package model

// LocationStructure is one route with its ordered comarcas.
// The hierarchy is fixed reference data; every comarca belongs to
// exactly one route.
type LocationStructure struct {
	RouteName string   `json:"routeName" toml:"name"`
	Comarcas  []string `json:"comarcas" toml:"comarcas"`
}

// CatalogMaterial is one entry of the seed material catalog.
type CatalogMaterial struct {
	Code     string `json:"code" toml:"code"`
	Name     string `json:"name" toml:"name"`
	Category string `json:"category" toml:"category"`
	Unit     string `json:"unit" toml:"unit"`
}

// CanonicalRoutes returns the built-in route hierarchy.
func CanonicalRoutes() []LocationStructure {
	return []LocationStructure{
		{
			RouteName: "Rota Norte",
			Comarcas:  []string{"Castanhal", "Capanema", "Bragança", "Salinópolis"},
		},
		{
			RouteName: "Rota Sul",
			Comarcas:  []string{"Marabá", "Parauapebas", "Redenção", "Tucuruí", "Conceição do Araguaia"},
		},
		{
			RouteName: "Rota Oeste",
			Comarcas:  []string{"Santarém", "Itaituba", "Altamira", "Oriximiná"},
		},
		{
			RouteName: "Rota Metropolitana",
			Comarcas:  []string{"Belém", "Ananindeua", "Marituba", "Benevides", "Icoaraci"},
		},
	}
}

// DefaultCatalog returns the built-in seed material catalog.
func DefaultCatalog() []CatalogMaterial {
	return []CatalogMaterial{
		{Code: "EXP-001", Name: "Papel A4 75g", Category: "Expediente", Unit: "CX"},
		{Code: "EXP-002", Name: "Caneta esferográfica azul", Category: "Expediente", Unit: "UN"},
		{Code: "EXP-003", Name: "Grampeador de mesa", Category: "Expediente", Unit: "UN"},
		{Code: "EXP-004", Name: "Envelope ofício", Category: "Expediente", Unit: "PCT"},
		{Code: "INF-001", Name: "Toner preto 26A", Category: "Informática", Unit: "UN"},
		{Code: "INF-002", Name: "Mouse óptico USB", Category: "Informática", Unit: "UN"},
		{Code: "LMP-001", Name: "Papel toalha interfolhado", Category: "Limpeza", Unit: "FD"},
		{Code: "LMP-002", Name: "Detergente neutro 5L", Category: "Limpeza", Unit: "GL"},
		{Code: "LMP-003", Name: "Saco de lixo 100L", Category: "Limpeza", Unit: "PCT"},
		{Code: "COP-001", Name: "Copo descartável 180ml", Category: "Copa", Unit: "CX"},
	}
}

// FindRoute returns the route a comarca belongs to, or "" when unknown.
func FindRoute(routes []LocationStructure, comarca string) string {
	for _, r := range routes {
		for _, c := range r.Comarcas {
			if c == comarca {
				return r.RouteName
			}
		}
	}
	return ""
}
