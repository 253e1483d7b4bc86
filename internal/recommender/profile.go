package recommender

import "strings"

// buildStudentProfileVector construye el vector 1 x nFeatures del alumno:
//   - si hay cursos completados que resuelven contra el índice, promedia
//     sus filas de la matriz ("componente historial")
//   - si hay tags de interés, los proyecta con el mismo vectorizador
//     ("componente intereses")
//   - con ambos componentes, promedia; con ninguno, ErrNoProfileSignal.
//
// Los ids desconocidos se saltan en silencio aquí: el Engine ya los validó
// antes (esa es la verificación con autoridad).
func buildStudentProfileVector(
	completedCourseIDs []string,
	interestTags []string,
	matrix [][]float64,
	idToIndex map[string]int,
	vec *CourseVectorizer,
) ([]float64, error) {

	nFeatures := vec.NumFeatures()
	var components [][]float64

	// ---- Componente 1: cursos completados ----
	// Dedup por fila: mandar el mismo curso dos veces no lo pesa doble.
	var rows []int
	seen := make(map[int]bool, len(completedCourseIDs))
	for _, cid := range completedCourseIDs {
		if idx, ok := idToIndex[cid]; ok && !seen[idx] {
			seen[idx] = true
			rows = append(rows, idx)
		}
	}
	if len(rows) > 0 {
		mean := make([]float64, nFeatures)
		for _, row := range rows {
			for j, x := range matrix[row] {
				mean[j] += x
			}
		}
		for j := range mean {
			mean[j] /= float64(len(rows))
		}
		components = append(components, mean)
	}

	// ---- Componente 2: tags de interés ----
	if len(interestTags) > 0 {
		tagsVec := vec.TransformText(strings.Join(interestTags, " "))
		components = append(components, tagsVec)
	}

	if len(components) == 0 {
		return nil, ErrNoProfileSignal
	}

	profile := make([]float64, nFeatures)
	for _, c := range components {
		for j, x := range c {
			profile[j] += x
		}
	}
	for j := range profile {
		profile[j] /= float64(len(components))
	}
	return profile, nil
}
