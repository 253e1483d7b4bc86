package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationItem es un curso rankeado tal cual sale por la API.
// score = similitud coseno * multiplicador de dificultad.
type RecommendationItem struct {
	CourseID       string   `bson:"courseId"       json:"course_id"`
	CourseName     string   `bson:"courseName"     json:"course_name"`
	Difficulty     int      `bson:"difficulty"     json:"difficulty"`
	Type           string   `bson:"type"           json:"type"`
	Score          float64  `bson:"score"          json:"score"`
	MissingPrereqs []string `bson:"missingPrereqs" json:"missing_prereqs"`
}

// RecommendationLog es el historial que guardamos en Mongo
// (colección "recommendations") cada vez que servimos una respuesta.
type RecommendationLog struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	StudentID string               `bson:"studentId,omitempty" json:"studentId,omitempty"`
	Params    any                  `bson:"params"    json:"params"`
	Items     []RecommendationItem `bson:"items"     json:"items"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
