package models

// ----- CATALOG QUALITY -----

// DanglingPrereq es una referencia a un prerequisito que no existe en el
// catálogo. Se tolera (nunca se puede satisfacer), pero vale la pena
// reportarla como problema de calidad de datos.
type DanglingPrereq struct {
	CourseID string   `json:"course_id"`
	Missing  []string `json:"missing"`
}

// CourseWithEmptyText curso sin descripción ni tags: no aporta nada
// al espacio de features TF-IDF.
type CourseWithEmptyText struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

// CatalogQualityReport respuesta de /admin/catalog/quality.
type CatalogQualityReport struct {
	TotalCourses       int                   `json:"totalCourses"`
	CoursesWithPrereqs int                   `json:"coursesWithPrereqs"`
	DanglingPrereqs    []DanglingPrereq      `json:"danglingPrereqs"`
	CoursesWithoutText []CourseWithEmptyText `json:"coursesWithoutText"`
	VocabularySize     int                   `json:"vocabularySize"`
	MaxFeatures        int                   `json:"maxFeatures"`
}
