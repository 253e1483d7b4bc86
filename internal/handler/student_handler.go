package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

type StudentHandler struct {
	svc *service.StudentService
}

func NewStudentHandler(s *service.StudentService) *StudentHandler { return &StudentHandler{svc: s} }

// ===== /me: el alumno autenticado sobre su propio perfil =====

// @Summary Mi perfil académico
// @Tags students
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.StudentProfileDoc
// @Router /me/profile [get]
func (h *StudentHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	studentID := StudentIDFromContext(r.Context())
	if studentID == "" {
		http.Error(w, "no student profile linked to this account", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), studentID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Actualizar mi perfil académico
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.StudentProfileUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.StudentProfileDoc
// @Router /me/profile [put]
func (h *StudentHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	studentID := StudentIDFromContext(r.Context())
	if studentID == "" {
		http.Error(w, "no student profile linked to this account", http.StatusBadRequest)
		return
	}
	h.updateProfile(w, r, studentID)
}

// ===== ADMIN: CRUD de perfiles =====

// @Summary Listar perfiles de alumnos (ADMIN)
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.StudentProfileDoc
// @Router /students [get]
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	profiles, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []models.StudentProfileDoc{}
	}
	_ = json.NewEncoder(w).Encode(profiles)
}

// @Summary Obtener perfil de alumno (ADMIN)
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param id path string true "studentId"
// @Success 200 {object} models.StudentProfileDoc
// @Router /students/{id} [get]
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	p, err := h.svc.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Crear perfil de alumno (ADMIN)
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.StudentProfileDoc true "perfil"
// @Success 201 {object} models.StudentProfileDoc
// @Router /students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var p models.StudentProfileDoc
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.StudentID == "" {
		http.Error(w, "body inválido (student_id requerido)", http.StatusBadRequest)
		return
	}

	created, err := h.svc.CreateProfile(r.Context(), &p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// @Summary Actualizar perfil de alumno (ADMIN)
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "studentId"
// @Param body body models.StudentProfileUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.StudentProfileDoc
// @Router /students/{id} [put]
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.updateProfile(w, r, chi.URLParam(r, "id"))
}

func (h *StudentHandler) updateProfile(w http.ResponseWriter, r *http.Request, studentID string) {
	var req models.StudentProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), studentID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}
