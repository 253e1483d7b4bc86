package recommender

import (
	"log"
	"strings"

	"github.com/jcljr27/course-recommender-backend/internal/models"
)

// Engine es el recomendador completo: snapshot del catálogo, vectorizador
// ajustado, matriz de cursos e índice course_id -> fila. Todo se construye
// junto en NewEngine y es inmutable después, así que se comparte entre
// requests concurrentes sin locks. Para recoger cambios de catálogo hay
// que reconstruirlo (en la práctica: reiniciar el servicio).
type Engine struct {
	courses    []models.CourseDoc
	vectorizer *CourseVectorizer
	matrix     [][]float64
	idToIndex  map[string]int
}

// Request son los parámetros por-request del pipeline de scoring.
type Request struct {
	CompletedCourses    []string
	InterestTags        []string
	PreferredDifficulty string // "" | "easy" | "medium" | "hard"
	AllowFutureCourses  bool
	TopK                int
}

// NewEngine ajusta el espacio TF-IDF con el catálogo completo y deja la
// matriz de cursos lista. Es la única forma de construir un Engine: el
// vocabulario y la matriz nunca pueden quedar desalineados.
func NewEngine(courses []models.CourseDoc, maxFeatures int) *Engine {
	corpus := buildCourseCorpus(courses)
	vec := NewCourseVectorizer(maxFeatures)
	matrix := vec.FitTransform(corpus)

	idToIndex := make(map[string]int, len(courses))
	for idx, c := range courses {
		idToIndex[c.CourseID] = idx
	}

	e := &Engine{
		courses:    courses,
		vectorizer: vec,
		matrix:     matrix,
		idToIndex:  idToIndex,
	}

	// Aviso (no error) por prerequisitos colgantes: dato tolerado pero
	// sospechoso, ver reporte de calidad del catálogo.
	for _, d := range e.DanglingPrereqs() {
		log.Printf("[recommender] curso %s referencia prerequisitos inexistentes: %s",
			d.CourseID, strings.Join(d.Missing, ", "))
	}

	log.Printf("[recommender] engine listo: %d cursos, vocabulario=%d (max=%d)",
		len(courses), vec.NumFeatures(), maxFeatures)
	return e
}

// buildCourseCorpus concatena nombre + descripción + tags de cada curso.
// Campos vacíos degradan a string vacío, nunca a error.
func buildCourseCorpus(courses []models.CourseDoc) []string {
	corpus := make([]string, len(courses))
	for i, c := range courses {
		parts := []string{c.CourseName, c.Description}
		parts = append(parts, c.Tags...)
		corpus[i] = strings.TrimSpace(strings.Join(parts, " "))
	}
	return corpus
}

// Recommend corre el pipeline completo para un alumno.
//
// Valida primero que todos los completed_courses existan en el catálogo
// (*UnknownCoursesError con los ids ofensores); duplicados son idempotentes.
// Después delega en la proyección de perfil y el scorer.
func (e *Engine) Recommend(req Request) ([]models.RecommendationItem, error) {
	var unknown []string
	seen := make(map[string]bool, len(req.CompletedCourses))
	for _, cid := range req.CompletedCourses {
		if seen[cid] {
			continue
		}
		seen[cid] = true
		if _, ok := e.idToIndex[cid]; !ok {
			unknown = append(unknown, cid)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownCoursesError{CourseIDs: unknown}
	}

	studentVec, err := buildStudentProfileVector(
		req.CompletedCourses,
		req.InterestTags,
		e.matrix,
		e.idToIndex,
		e.vectorizer,
	)
	if err != nil {
		return nil, err
	}

	return scoreCourses(
		studentVec,
		e.matrix,
		e.courses,
		req.CompletedCourses,
		req.TopK,
		req.AllowFutureCourses,
		req.PreferredDifficulty,
	), nil
}

// Courses devuelve el snapshot del catálogo (orden de carga).
// Los callers no deben mutarlo.
func (e *Engine) Courses() []models.CourseDoc {
	return e.courses
}

// Course busca un curso del snapshot por course_id; nil si no existe.
func (e *Engine) Course(courseID string) *models.CourseDoc {
	idx, ok := e.idToIndex[courseID]
	if !ok {
		return nil
	}
	return &e.courses[idx]
}

// NumFeatures expone la dimensión del espacio ajustado (para el reporte
// de calidad del catálogo).
func (e *Engine) NumFeatures() int {
	return e.vectorizer.NumFeatures()
}

// DanglingPrereqs lista los cursos cuyos prerequisitos referencian ids que
// no existen en el catálogo.
func (e *Engine) DanglingPrereqs() []models.DanglingPrereq {
	var out []models.DanglingPrereq
	for _, c := range e.courses {
		var missing []string
		for _, p := range c.Prerequisites {
			if _, ok := e.idToIndex[p]; !ok {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			out = append(out, models.DanglingPrereq{CourseID: c.CourseID, Missing: missing})
		}
	}
	return out
}
