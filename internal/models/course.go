package models

// CourseDoc es lo que está en Mongo (colección "courses").
// El JSON usa snake_case porque es el contrato que ya consume el frontend.
type CourseDoc struct {
	CourseID      string   `json:"course_id" bson:"courseId"`
	CourseName    string   `json:"course_name" bson:"courseName"`
	Credits       int      `json:"credits" bson:"credits"`
	Tags          []string `json:"tags" bson:"tags"`
	Description   string   `json:"description" bson:"description"`
	Difficulty    int      `json:"difficulty" bson:"difficulty"`
	Workload      int      `json:"workload" bson:"workload"`
	Type          string   `json:"type" bson:"type"` // "major", "elective", etc.
	Prerequisites []string `json:"prerequisites" bson:"prerequisites"`
	CreatedAt     string   `json:"created_at,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// Payload para crear un curso (admin)
type CourseCreateRequest struct {
	CourseID      string   `json:"course_id"`   // obligatorio, p.e. "CS101"
	CourseName    string   `json:"course_name"` // obligatorio
	Credits       int      `json:"credits"`
	Tags          []string `json:"tags,omitempty"`
	Description   string   `json:"description,omitempty"`
	Difficulty    int      `json:"difficulty"`
	Workload      int      `json:"workload"`
	Type          string   `json:"type,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Payload para actualización parcial de curso
type CourseUpdateRequest struct {
	CourseName    *string   `json:"course_name,omitempty"`
	Credits       *int      `json:"credits,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Difficulty    *int      `json:"difficulty,omitempty"`
	Workload      *int      `json:"workload,omitempty"`
	Type          *string   `json:"type,omitempty"`
	Prerequisites *[]string `json:"prerequisites,omitempty"`
}
