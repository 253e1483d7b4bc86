package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/recommender"
	"github.com/jcljr27/course-recommender-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// Body del POST /recommendations. TopK es puntero para distinguir "no
// enviado" (default 5) de un 0 explícito (lista vacía).
type recommendationRequest struct {
	StudentID           string   `json:"student_id,omitempty"`
	CompletedCourses    []string `json:"completed_courses"`
	InterestTags        []string `json:"interest_tags"`
	PreferredDifficulty string   `json:"preferred_difficulty,omitempty"` // easy|medium|hard
	AllowFutureCourses  bool     `json:"allow_future_courses"`
	TopK                *int     `json:"top_k,omitempty"`
}

func (req *recommendationRequest) toService(refresh bool) service.RecRequest {
	topK := service.DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	return service.RecRequest{
		StudentID:           req.StudentID,
		CompletedCourses:    req.CompletedCourses,
		InterestTags:        req.InterestTags,
		PreferredDifficulty: req.PreferredDifficulty,
		AllowFutureCourses:  req.AllowFutureCourses,
		TopK:                topK,
		Refresh:             refresh,
	}
}

// writeRecommendError separa los tres errores de cliente del resto:
// perfil sin señal (400), course_ids desconocidos (400), perfil
// inexistente (404). Todo lo demás es 500 y se loguea con tamaños de
// input, nunca con el payload.
func writeRecommendError(w http.ResponseWriter, req service.RecRequest, err error) {
	var unknownErr *recommender.UnknownCoursesError
	switch {
	case errors.Is(err, recommender.ErrNoProfileSignal):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &unknownErr):
		http.Error(w, unknownErr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrStudentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("/recommendations error inesperado: %v (completed=%d tags=%d top_k=%d)",
			err, len(req.CompletedCourses), len(req.InterestTags), req.TopK)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// @Summary Recomendaciones de cursos para un alumno
// @Description Rankea el catálogo por similitud TF-IDF contra el perfil del alumno. Si viene student_id y no vienen completed_courses ni interest_tags, se resuelven desde el perfil guardado.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param refresh query bool false "si true, ignora cache Redis"
// @Param body body recommendationRequest true "estado del alumno"
// @Success 200 {array} models.RecommendationItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recommendations [post]
func (h *RecommendHandler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	refresh := r.URL.Query().Get("refresh") == "true"

	sreq := req.toService(refresh)
	items, err := h.svc.Recommend(r.Context(), sreq)
	if err != nil {
		writeRecommendError(w, sreq, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Mis recomendaciones (alumno autenticado)
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param allow_future query bool false "incluir cursos con prereqs pendientes"
// @Param difficulty query string false "easy|medium|hard"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecommendationItem
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	studentID := StudentIDFromContext(r.Context())
	if studentID == "" {
		http.Error(w, "no student profile linked to this account", http.StatusBadRequest)
		return
	}

	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	if k <= 0 {
		k = service.DefaultTopK
	}

	sreq := service.RecRequest{
		StudentID:           studentID,
		PreferredDifficulty: r.URL.Query().Get("difficulty"),
		AllowFutureCourses:  r.URL.Query().Get("allow_future") == "true",
		TopK:                k,
		Refresh:             r.URL.Query().Get("refresh") == "true",
	}

	items, err := h.svc.Recommend(r.Context(), sreq)
	if err != nil {
		writeRecommendError(w, sreq, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket, admin)
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param id path string true "studentId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Router /students/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	studentID := chi.URLParam(r, "id")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	if k <= 0 {
		k = service.DefaultTopK
	}

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	sreq := service.RecRequest{
		StudentID: studentID,
		TopK:      k,
		Refresh:   r.URL.Query().Get("refresh") == "true",
	}
	items, err := h.svc.Recommend(r.Context(), sreq)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"studentId":   studentID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}

// @Summary Historial de recomendaciones de un alumno (admin)
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param id path string true "studentId"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.RecommendationLog
// @Router /students/{id}/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	studentID := chi.URLParam(r, "id")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.svc.History(r.Context(), studentID, int64(limit))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(logs)
}
