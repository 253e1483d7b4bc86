package recommender

import (
	"math"
	"sort"

	"github.com/jcljr27/course-recommender-backend/internal/models"
)

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// missingPrereqs devuelve los prerequisitos no completados, en el orden
// declarado por el curso. Prerequisitos colgantes (id que no existe en el
// catálogo) cuentan como no completados: se toleran, nunca se satisfacen.
func missingPrereqs(course *models.CourseDoc, completed map[string]bool) []string {
	missing := []string{}
	for _, p := range course.Prerequisites {
		if !completed[p] {
			missing = append(missing, p)
		}
	}
	return missing
}

// difficultyWeight empuja el score según la dificultad preferida.
func difficultyWeight(difficulty int, preferred string) float64 {
	switch preferred {
	case "easy":
		if difficulty <= 2 {
			return 1.1
		}
		return 0.9
	case "medium":
		if difficulty >= 2 && difficulty <= 4 {
			return 1.1
		}
		return 0.9
	case "hard":
		if difficulty >= 4 {
			return 1.1
		}
		return 0.9
	}
	return 1.0
}

// scoreCourses rankea todos los cursos contra el vector del alumno:
//  1. similitud coseno contra cada fila de la matriz
//  2. excluye cursos completados; calcula missing_prereqs; si
//     allowFutureCourses es false, los cursos con prereqs pendientes no
//     aparecen (ni siquiera rankeados abajo)
//  3. score final = coseno * peso de dificultad; orden estable descendente
//     (empates mantienen el orden de catálogo) y corte a topK.
//
// topK <= 0 devuelve vacío; topK mayor que los candidatos devuelve todos.
func scoreCourses(
	studentVec []float64,
	matrix [][]float64,
	courses []models.CourseDoc,
	completedCourseIDs []string,
	topK int,
	allowFutureCourses bool,
	preferredDifficulty string,
) []models.RecommendationItem {

	completed := make(map[string]bool, len(completedCourseIDs))
	for _, cid := range completedCourseIDs {
		completed[cid] = true
	}

	candidates := []models.RecommendationItem{}
	for idx := range courses {
		course := &courses[idx]

		if completed[course.CourseID] {
			continue
		}

		missing := missingPrereqs(course, completed)
		if !allowFutureCourses && len(missing) > 0 {
			continue
		}

		sim := cosineSimilarity(studentVec, matrix[idx])
		weight := difficultyWeight(course.Difficulty, preferredDifficulty)

		candidates = append(candidates, models.RecommendationItem{
			CourseID:       course.CourseID,
			CourseName:     course.CourseName,
			Difficulty:     course.Difficulty,
			Type:           course.Type,
			Score:          sim * weight,
			MissingPrereqs: missing,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if topK < 0 {
		topK = 0
	}
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates
}
