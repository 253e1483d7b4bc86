package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados posibles del request
const (
	CourseRequestStatusPending  = "pending"
	CourseRequestStatusApproved = "approved"
	CourseRequestStatusRejected = "rejected"
)

// Documento para la colección course_requests: un alumno propone un
// curso nuevo y un admin lo aprueba (se inserta al catálogo) o lo rechaza.
type CourseRequest struct {
	ID               primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID           int                 `json:"userId" bson:"userId"`
	Status           string              `json:"status" bson:"status"` // pending|approved|rejected
	Course           CourseCreateRequest `json:"course" bson:"course"`
	ApprovedCourseID *string             `json:"approvedCourseId,omitempty" bson:"approvedCourseId,omitempty"`
	Reason           string              `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt        time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// Body para rechazar un request de curso.
type RejectCourseRequest struct {
	Reason string `json:"reason"`
}
