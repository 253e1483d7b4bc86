package service

import (
	"context"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/recommender"
	"github.com/jcljr27/course-recommender-backend/internal/repository"
)

// CatalogQualityService arma el reporte de calidad del catálogo para el
// admin: prerequisitos colgantes (tolerados por el recomendador pero nunca
// satisfacibles), cursos sin texto y tamaño del vocabulario ajustado.
type CatalogQualityService struct {
	courses     *repository.CourseRepository
	engine      *recommender.Engine
	maxFeatures int
}

func NewCatalogQualityService(
	courses *repository.CourseRepository,
	engine *recommender.Engine,
	maxFeatures int,
) *CatalogQualityService {
	return &CatalogQualityService{
		courses:     courses,
		engine:      engine,
		maxFeatures: maxFeatures,
	}
}

// Report escanea el catálogo actual en Mongo. Ojo: puede divergir del
// snapshot del engine si un admin agregó cursos después del arranque;
// por eso los colgantes se calculan contra lo que hay en la colección.
func (s *CatalogQualityService) Report(ctx context.Context) (*models.CatalogQualityReport, error) {
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildCatalogQualityReport(courses)
	report.VocabularySize = s.engine.NumFeatures()
	report.MaxFeatures = s.maxFeatures
	return report, nil
}

// BuildCatalogQualityReport es la parte pura del reporte (separada para
// poder testearla sin Mongo).
func BuildCatalogQualityReport(courses []models.CourseDoc) *models.CatalogQualityReport {
	known := make(map[string]bool, len(courses))
	for _, c := range courses {
		known[c.CourseID] = true
	}

	report := &models.CatalogQualityReport{
		TotalCourses:       len(courses),
		DanglingPrereqs:    []models.DanglingPrereq{},
		CoursesWithoutText: []models.CourseWithEmptyText{},
	}

	for _, c := range courses {
		if len(c.Prerequisites) > 0 {
			report.CoursesWithPrereqs++
		}

		var missing []string
		for _, p := range c.Prerequisites {
			if !known[p] {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			report.DanglingPrereqs = append(report.DanglingPrereqs, models.DanglingPrereq{
				CourseID: c.CourseID,
				Missing:  missing,
			})
		}

		if c.Description == "" && len(c.Tags) == 0 {
			report.CoursesWithoutText = append(report.CoursesWithoutText, models.CourseWithEmptyText{
				CourseID:   c.CourseID,
				CourseName: c.CourseName,
			})
		}
	}

	return report
}
