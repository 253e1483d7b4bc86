package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/cache"
	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/recommender"
	"github.com/jcljr27/course-recommender-backend/internal/repository"
)

const (
	DefaultTopK = 5
	MaxTopK     = 50 // por seguridad, no deja pedir 1000 ítems
)

// ErrStudentNotFound: el student_id no tiene perfil en student_profiles.
// Distinto de "no hay señal" (eso es recommender.ErrNoProfileSignal).
var ErrStudentNotFound = errors.New("student profile not found")

// RecommendService es la capa que rodea al Engine: resuelve el perfil del
// alumno cuando el request trae solo student_id, cachea en Redis y guarda
// historial en Mongo. El Engine en sí es inmutable y se construye una sola
// vez en main, antes de aceptar requests.
type RecommendService struct {
	engine   *recommender.Engine
	students *repository.StudentRepository
	recRepo  *repository.RecommendationRepository
}

func NewRecommendService(
	engine *recommender.Engine,
	students *repository.StudentRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		engine:   engine,
		students: students,
		recRepo:  recRepo,
	}
}

// RecRequest son los parámetros del request ya decodificados. El default
// de TopK lo aplica el handler (tiene que distinguir "ausente" de un 0
// explícito); acá solo se acota el máximo.
type RecRequest struct {
	StudentID           string
	CompletedCourses    []string
	InterestTags        []string
	PreferredDifficulty string
	AllowFutureCourses  bool
	TopK                int
	Refresh             bool
}

func cacheKey(req RecRequest) string {
	// Cachea por el set completo de parámetros que afectan el resultado
	// (refresh no entra, solo decide si usar el cache).
	return fmt.Sprintf("rec:%s:%s:%s:%s:%t:%d",
		req.StudentID,
		strings.Join(req.CompletedCourses, ","),
		strings.Join(req.InterestTags, ","),
		req.PreferredDifficulty,
		req.AllowFutureCourses,
		req.TopK,
	)
}

// Recommend corre el pipeline completo para un request de la API.
//
// Regla de resolución (igual que el backend original): si viene student_id
// y tanto completed_courses como interest_tags vienen vacíos, se cargan del
// perfil; interest_tags explícitos siempre ganan sobre los guardados.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecommendationItem, error) {
	// top_k explícito en 0 (o negativo) devuelve lista vacía; el default
	// para "ausente" ya lo puso el handler.
	if req.TopK > MaxTopK {
		req.TopK = MaxTopK
	}

	if req.StudentID != "" && len(req.CompletedCourses) == 0 && len(req.InterestTags) == 0 {
		profile, err := s.students.GetByStudentID(ctx, req.StudentID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrStudentNotFound
		}

		req.CompletedCourses = profile.CompletedCourses
		req.InterestTags = profile.InterestTags
		if req.PreferredDifficulty == "" {
			req.PreferredDifficulty = profile.PreferredDifficulty
		}
	}

	// 1) Cache Redis (solo si refresh = false)
	key := cacheKey(req)
	var cached []models.RecommendationItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Scoring (determinista, estado inmutable: sin locks ni reintentos)
	items, err := s.engine.Recommend(recommender.Request{
		CompletedCourses:    req.CompletedCourses,
		InterestTags:        req.InterestTags,
		PreferredDifficulty: req.PreferredDifficulty,
		AllowFutureCourses:  req.AllowFutureCourses,
		TopK:                req.TopK,
	})
	if err != nil {
		return nil, err
	}

	// 3) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.RecommendationLog{
			StudentID: req.StudentID,
			Params: map[string]any{
				"completed_courses":    len(req.CompletedCourses),
				"interest_tags":        len(req.InterestTags),
				"preferred_difficulty": req.PreferredDifficulty,
				"allow_future_courses": req.AllowFutureCourses,
				"top_k":                req.TopK,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, key, items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// History devuelve el historial guardado de un alumno.
func (s *RecommendService) History(ctx context.Context, studentID string, limit int64) ([]models.RecommendationLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.recRepo.FindByStudent(ctx, studentID, limit)
}
