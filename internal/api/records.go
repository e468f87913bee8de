package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"supriplan/internal/model"
	"supriplan/internal/parser"
	"supriplan/internal/store"
)

// quantityFields are patched through SetQuantity; everything else
// writable goes through SetText.
var quantityFields = map[model.FieldName]bool{
	model.FieldPredictedDemand: true,
	model.FieldRequestedQty:    true,
	model.FieldApprovedQty:     true,
}

// ListRecords returns the dataset, optionally filtered.
// GET /api/records?route=&comarca=&q=
func (h *Handler) ListRecords(c *gin.Context) {
	route := c.Query("route")
	comarca := c.Query("comarca")
	q := strings.ToLower(c.Query("q"))

	var out []*model.MaterialRecord
	for _, rec := range h.store.Records() {
		if route != "" && rec.RouteName != route {
			continue
		}
		if comarca != "" && rec.LocationName != comarca {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(rec.MaterialName), q) &&
			!strings.Contains(strings.ToLower(rec.Code), q) {
			continue
		}
		out = append(out, rec)
	}

	c.JSON(http.StatusOK, gin.H{"records": out, "total": len(out)})
}

// AddRecord inserts one manually created record. Admin only.
// POST /api/records
func (h *Handler) AddRecord(c *gin.Context) {
	var req struct {
		Code         string  `json:"code"`
		MaterialName string  `json:"materialName"`
		Unit         string  `json:"unit"`
		Category     string  `json:"category"`
		Route        string  `json:"route"`
		Comarca      string  `json:"comarca"`
		Predicted    float64 `json:"predictedDemand"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.store.Add(roleFrom(c), model.ImportCandidate{
		Code:         req.Code,
		MaterialName: req.MaterialName,
		Unit:         req.Unit,
		Category:     req.Category,
		Route:        req.Route,
		Location:     req.Comarca,
		Predicted:    req.Predicted,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrFieldNotWritable) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

// UpdateRecord patches one field of one record through the
// authorization gate. Quantity values may arrive as JSON numbers or as
// locale-formatted strings.
// PATCH /api/records/:id
func (h *Handler) UpdateRecord(c *gin.Context) {
	var req struct {
		Field string      `json:"field"`
		Value interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := c.Param("id")
	field := model.FieldName(req.Field)
	role := roleFrom(c)

	var err error
	if quantityFields[field] {
		var qty float64
		qty, err = quantityValue(req.Value)
		if err == nil {
			err = h.store.SetQuantity(role, id, field, qty)
		}
	} else {
		value, ok := req.Value.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "value must be a string"})
			return
		}
		err = h.store.SetText(role, id, field, value)
	}

	switch {
	case err == nil:
	case errors.Is(err, store.ErrFieldNotWritable):
		c.JSON(http.StatusForbidden, gin.H{"error": "campo não editável para este perfil"})
		return
	case errors.Is(err, store.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "registro não encontrado"})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, _ := h.store.Get(id)
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

// DeleteRecords removes the given ids.
// POST /api/records/delete
func (h *Handler) DeleteRecords(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	deleted := h.store.Delete(req.IDs)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// quantityValue accepts a JSON number or a locale-formatted string.
func quantityValue(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		return parser.ParseLocaleNumber(val)
	default:
		return 0, errors.New("value must be a number or numeric string")
	}
}
