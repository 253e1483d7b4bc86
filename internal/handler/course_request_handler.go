package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseRequestHandler struct {
	svc *service.CourseRequestService
}

func NewCourseRequestHandler(s *service.CourseRequestService) *CourseRequestHandler {
	return &CourseRequestHandler{svc: s}
}

// @Summary Proponer un curso nuevo
// @Description El alumno propone un curso para el catálogo; queda pending hasta que un admin lo apruebe o rechace.
// @Tags course-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CourseCreateRequest true "datos del curso propuesto"
// @Success 201 {object} models.CourseRequest
// @Failure 400 {object} map[string]string
// @Router /me/course-requests [post]
func (h *CourseRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CourseCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CourseID == "" || req.CourseName == "" {
		http.Error(w, "body inválido (course_id y course_name requeridos)", http.StatusBadRequest)
		return
	}

	userID := UserIDFromContext(r.Context())
	cr, err := h.svc.CreateRequest(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(cr)
}

// @Summary Mis propuestas de cursos
// @Tags course-requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending|approved|rejected"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.CourseRequest
// @Router /me/course-requests [get]
func (h *CourseRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	userID := UserIDFromContext(r.Context())
	requests, err := h.svc.ListMine(r.Context(), userID, status, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if requests == nil {
		requests = []models.CourseRequest{}
	}
	_ = json.NewEncoder(w).Encode(requests)
}

// @Summary Listar propuestas de cursos (ADMIN)
// @Tags course-requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending|approved|rejected"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.CourseRequest
// @Router /admin/course-requests [get]
func (h *CourseRequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	requests, err := h.svc.ListAll(r.Context(), status, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if requests == nil {
		requests = []models.CourseRequest{}
	}
	_ = json.NewEncoder(w).Encode(requests)
}

// @Summary Aprobar propuesta de curso (ADMIN)
// @Description Crea el curso en el catálogo con los datos del request (mergeados con el override opcional del body) y marca el request como approved.
// @Tags course-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "id del request"
// @Param body body models.CourseCreateRequest false "override opcional de los datos del curso"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/course-requests/{id}/approve [post]
func (h *CourseRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	// body opcional
	var override *models.CourseCreateRequest
	var body models.CourseCreateRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&body); decodeErr == nil {
		override = &body
	}

	cr, course, err := h.svc.Approve(r.Context(), id, override)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if cr == nil {
		http.NotFound(w, r)
		return
	}
	if course == nil {
		http.Error(w, "el request no está pending", http.StatusBadRequest)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"request": cr,
		"course":  course,
	})
}

// @Summary Rechazar propuesta de curso (ADMIN)
// @Tags course-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "id del request"
// @Param body body models.RejectCourseRequest false "motivo del rechazo"
// @Success 200 {object} models.CourseRequest
// @Failure 400 {object} map[string]string
// @Router /admin/course-requests/{id}/reject [post]
func (h *CourseRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	var body models.RejectCourseRequest
	_ = json.NewDecoder(r.Body).Decode(&body)

	cr, err := h.svc.Reject(r.Context(), id, body.Reason)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if cr == nil {
		http.NotFound(w, r)
		return
	}
	if cr.Status != models.CourseRequestStatusRejected {
		http.Error(w, "el request no está pending", http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(cr)
}
