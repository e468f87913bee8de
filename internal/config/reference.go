package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"supriplan/internal/model"
)

// referenceFile is the on-disk shape of a hierarchy/catalog override:
//
//	[[routes]]
//	name = "Rota Norte"
//	comarcas = ["Castanhal", "Capanema"]
//
//	[[materials]]
//	code = "EXP-001"
//	name = "Papel A4 75g"
//	category = "Expediente"
//	unit = "CX"
type referenceFile struct {
	Routes    []model.LocationStructure `toml:"routes"`
	Materials []model.CatalogMaterial   `toml:"materials"`
}

// LoadReferenceData returns the route hierarchy and seed catalog,
// taking the built-in data unless the config points at an override
// file. Either section may be omitted in the file to keep the default.
func LoadReferenceData(config *AppConfig) ([]model.LocationStructure, []model.CatalogMaterial, error) {
	routes := model.CanonicalRoutes()
	catalog := model.DefaultCatalog()

	path := config.Data.ReferencePath
	if path == "" {
		return routes, catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	var ref referenceFile
	if err := toml.Unmarshal(data, &ref); err != nil {
		return nil, nil, fmt.Errorf("failed to parse reference file: %w", err)
	}

	if len(ref.Routes) > 0 {
		routes = ref.Routes
	}
	if len(ref.Materials) > 0 {
		catalog = ref.Materials
	}
	return routes, catalog, nil
}
