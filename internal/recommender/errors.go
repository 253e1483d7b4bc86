package recommender

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoProfileSignal: no hay cursos completados válidos ni tags de interés,
// así que no se puede construir el vector del alumno. Error de input del
// cliente (400), nunca se reintenta.
var ErrNoProfileSignal = errors.New("cannot build student profile: no completed courses or interest tags")

// UnknownCoursesError: uno o más course_ids de completed_courses no existen
// en el catálogo. Lleva los ids ofensores para el mensaje de la API.
type UnknownCoursesError struct {
	CourseIDs []string
}

func (e *UnknownCoursesError) Error() string {
	return fmt.Sprintf("unknown completed course_ids: %s", strings.Join(e.CourseIDs, ", "))
}
