package models

type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"` // "student" | "admin"
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string `json:"updatedAt" bson:"updatedAt"`

	// Datos de cuenta (el perfil académico vive aparte, en
	// student_profiles, enlazado por StudentID).
	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Username  string `json:"username,omitempty" bson:"username,omitempty"`
	StudentID string `json:"studentId,omitempty" bson:"studentId,omitempty"`
	Major     string `json:"major,omitempty" bson:"major,omitempty"`
}
