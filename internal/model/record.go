package model

// Role identifies who is editing the dataset.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleRegional Role = "regional"
)

// Status is the derived lifecycle state of a demand line.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRequested Status = "requested"
	StatusApproved  Status = "approved"
)

// FieldName names a writable MaterialRecord field.
type FieldName string

const (
	FieldCode            FieldName = "code"
	FieldMaterialName    FieldName = "materialName"
	FieldUnit            FieldName = "unit"
	FieldCategory        FieldName = "category"
	FieldPredictedDemand FieldName = "predictedDemand"
	FieldRoute           FieldName = "route"
	FieldLocation        FieldName = "comarca"
	FieldRequestedQty    FieldName = "requestedQty"
	FieldApprovedQty     FieldName = "approvedQty"
)

// Defaults substituted by the merge engine for fields the import left unset.
const (
	DefaultRoute    = "Indefinida"
	DefaultLocation = "Indefinida"
	DefaultCategory = "Geral"
	DefaultUnit     = "UN"
)

// MaterialRecord is one demand line for one material at one comarca.
type MaterialRecord struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	RouteName       string  `json:"routeName"`
	LocationName    string  `json:"locationName"`
	MaterialName    string  `json:"materialName"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	PredictedDemand float64 `json:"predictedDemand"`
	RequestedQty    float64 `json:"requestedQty"`
	ApprovedQty     float64 `json:"approvedQty"`
	Status          Status  `json:"status"`
}

// RecomputeStatus derives Status from the quantity fields.
// Approved quantity takes precedence over requested.
func (r *MaterialRecord) RecomputeStatus() {
	switch {
	case r.ApprovedQty > 0:
		r.Status = StatusApproved
	case r.RequestedQty > 0:
		r.Status = StatusRequested
	default:
		r.Status = StatusPending
	}
}

// ImportCandidate is one materialized spreadsheet row before merging.
// Empty string fields mean the column was not mapped or the cell was blank.
type ImportCandidate struct {
	Code         string
	MaterialName string
	Unit         string
	Category     string
	Route        string
	Location     string
	Predicted    float64
}
