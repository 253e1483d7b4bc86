package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jcljr27/course-recommender-backend/internal/service"
)

type CatalogHandler struct {
	svc *service.CatalogQualityService
}

func NewCatalogHandler(s *service.CatalogQualityService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

// @Summary Reporte de calidad del catálogo (ADMIN)
// @Description Prerequisitos colgantes, cursos sin texto y tamaño del vocabulario TF-IDF ajustado al arranque.
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CatalogQualityReport
// @Router /admin/catalog/quality [get]
func (h *CatalogHandler) Quality(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.svc.Report(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(report)
}
