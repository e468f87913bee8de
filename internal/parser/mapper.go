package parser

// Field is a canonical import field the column mapper can resolve.
type Field string

const (
	FieldCode      Field = "code"
	FieldMaterial  Field = "material"
	FieldUnit      Field = "unit"
	FieldPredicted Field = "predicted"
	FieldRoute     Field = "route"
	FieldLocation  Field = "location"
	FieldCategory  Field = "category"
)

// fieldKeywords maps each canonical field to the header fragments that
// claim a column, in claim-priority order. Earlier fields win contested
// columns; a later field skips columns already claimed and takes its
// next matching one.
var fieldKeywords = []struct {
	field    Field
	keywords []string
}{
	{FieldCode, []string{"cód", "codigo", "cod"}},
	{FieldMaterial, []string{"material", "produto", "descri", "item"}},
	{FieldUnit, []string{"unid", "medida", "un."}},
	{FieldPredicted, []string{"previs", "demanda", "consumo", "estimad", "qtd", "quant"}},
	{FieldRoute, []string{"rota"}},
	{FieldLocation, []string{"comarca", "local", "cidade", "munic"}},
	{FieldCategory, []string{"categ", "grupo", "tipo"}},
}

// ColumnMapping resolves canonical fields to column indexes. Fields the
// header does not carry are simply absent.
type ColumnMapping map[Field]int

// MapColumns assigns each canonical field the leftmost unclaimed header
// cell containing one of its keyword fragments. A column belongs to at
// most one field per pass.
func MapColumns(headerCells []string) ColumnMapping {
	normalized := make([]string, len(headerCells))
	for i, cell := range headerCells {
		normalized[i] = NormalizeCell(cell)
	}

	mapping := make(ColumnMapping)
	claimed := make(map[int]bool)

	for _, fk := range fieldKeywords {
		for idx, cell := range normalized {
			if cell == "" || claimed[idx] {
				continue
			}
			if containsAny(cell, fk.keywords) {
				mapping[fk.field] = idx
				claimed[idx] = true
				break
			}
		}
	}
	return mapping
}
