// internal/handler/course_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

type CourseHandler struct {
	svc *service.CourseService
}

func NewCourseHandler(s *service.CourseService) *CourseHandler { return &CourseHandler{svc: s} }

// @Summary Listar todos los cursos del catálogo
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseDoc
// @Router /courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	courses, err := h.svc.ListCourses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if courses == nil {
		courses = []models.CourseDoc{}
	}
	_ = json.NewEncoder(w).Encode(courses)
}

// @Summary Get course
// @Tags courses
// @Produce json
// @Param course_id path string true "course_id (p.e. CS101)"
// @Success 200 {object} models.CourseDoc
// @Router /courses/{course_id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	courseID := chi.URLParam(r, "course_id")
	c, err := h.svc.GetCourse(r.Context(), courseID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(c)
}

// @Summary Buscar / listar cursos (paginado)
// @Tags courses
// @Produce json
// @Param q query string false "búsqueda por nombre/descripción"
// @Param tag query string false "filtrar por tag"
// @Param type query string false "filtrar por tipo (major|elective)"
// @Param difficulty_from query int false "dificultad desde"
// @Param difficulty_to query int false "dificultad hasta"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.CourseDoc
// @Router /courses/search [get]
func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")
	courseType := r.URL.Query().Get("type")

	diffFrom, _ := strconv.Atoi(r.URL.Query().Get("difficulty_from"))
	diffTo, _ := strconv.Atoi(r.URL.Query().Get("difficulty_to"))

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	courses, err := h.svc.Search(r.Context(), q, tag, courseType, diffFrom, diffTo, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if courses == nil {
		courses = []models.CourseDoc{}
	}
	_ = json.NewEncoder(w).Encode(courses)
}

// ====== ADMIN: crear / actualizar cursos ======

// @Summary Crear nuevo curso
// @Description El curso entra al ranking del recomendador después del próximo reinicio (el espacio de features se ajusta una sola vez al arranque).
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CourseCreateRequest true "Datos del curso"
// @Success 201 {object} models.CourseDoc
// @Router /admin/courses [post]
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CourseCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CourseID == "" {
		http.Error(w, "body inválido (course_id requerido)", http.StatusBadRequest)
		return
	}

	c, err := h.svc.CreateCourse(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// @Summary Actualizar curso
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param course_id path string true "course_id"
// @Param body body models.CourseUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.CourseDoc
// @Router /admin/courses/{course_id} [put]
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	courseID := chi.URLParam(r, "course_id")

	var req models.CourseUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	c, err := h.svc.UpdateCourse(r.Context(), courseID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(c)
}
