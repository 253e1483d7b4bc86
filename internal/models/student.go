package models

// StudentProfileDoc es el perfil académico guardado en Mongo
// (colección "student_profiles"). Los cursos completados y los
// intereses se guardan como strings planos (course_id / tag).
type StudentProfileDoc struct {
	StudentID           string   `json:"student_id" bson:"studentId"`
	Major               string   `json:"major" bson:"major"`
	PreferredDifficulty string   `json:"preferred_difficulty,omitempty" bson:"preferredDifficulty,omitempty"` // "easy"|"medium"|"hard"
	Notes               string   `json:"notes,omitempty" bson:"notes,omitempty"`
	CompletedCourses    []string `json:"completed_courses" bson:"completedCourses"`
	InterestTags        []string `json:"interest_tags" bson:"interestTags"`
	CreatedAt           string   `json:"created_at,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// Payload para crear/actualizar un perfil (admin o el propio alumno vía /me)
type StudentProfileUpdateRequest struct {
	Major               *string   `json:"major,omitempty"`
	PreferredDifficulty *string   `json:"preferred_difficulty,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
	CompletedCourses    *[]string `json:"completed_courses,omitempty"`
	InterestTags        *[]string `json:"interest_tags,omitempty"`
}
