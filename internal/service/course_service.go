// internal/service/course_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type CourseService struct {
	courses *repository.CourseRepository
}

func NewCourseService(c *repository.CourseRepository) *CourseService {
	return &CourseService{courses: c}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.CourseDoc, error) {
	return s.courses.ListAll(ctx)
}

func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*models.CourseDoc, error) {
	return s.courses.GetByCourseID(ctx, courseID)
}

func (s *CourseService) Search(
	ctx context.Context,
	q, tag, courseType string,
	diffFrom, diffTo, limit, offset int,
) ([]models.CourseDoc, error) {
	return s.courses.Search(ctx, q, tag, courseType, diffFrom, diffTo, limit, offset)
}

// CreateCourse inserta un curso nuevo al catálogo. Ojo: el recomendador
// trabaja sobre el snapshot cargado al arranque, así que el curso entra al
// ranking recién después de reiniciar el servicio.
func (s *CourseService) CreateCourse(ctx context.Context, req *models.CourseCreateRequest) (*models.CourseDoc, error) {
	if req.CourseID == "" || req.CourseName == "" {
		return nil, fmt.Errorf("course_id and course_name are required")
	}

	existing, err := s.courses.GetByCourseID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("course_id %s already exists", req.CourseID)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	c := &models.CourseDoc{
		CourseID:      req.CourseID,
		CourseName:    req.CourseName,
		Credits:       req.Credits,
		Tags:          req.Tags,
		Description:   req.Description,
		Difficulty:    req.Difficulty,
		Workload:      req.Workload,
		Type:          req.Type,
		Prerequisites: req.Prerequisites,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Prerequisites == nil {
		c.Prerequisites = []string{}
	}

	if err := s.courses.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCourse actualiza campos opcionales de un curso.
func (s *CourseService) UpdateCourse(ctx context.Context, courseID string, req *models.CourseUpdateRequest) (*models.CourseDoc, error) {
	existing, err := s.courses.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	update := bson.M{}
	if req.CourseName != nil {
		if *req.CourseName == "" {
			return nil, fmt.Errorf("course_name cannot be empty")
		}
		update["courseName"] = *req.CourseName
	}
	if req.Credits != nil {
		update["credits"] = *req.Credits
	}
	if req.Tags != nil {
		update["tags"] = *req.Tags
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Difficulty != nil {
		update["difficulty"] = *req.Difficulty
	}
	if req.Workload != nil {
		update["workload"] = *req.Workload
	}
	if req.Type != nil {
		update["type"] = *req.Type
	}
	if req.Prerequisites != nil {
		update["prerequisites"] = *req.Prerequisites
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.courses.Update(ctx, courseID, update); err != nil {
		return nil, err
	}
	return s.courses.GetByCourseID(ctx, courseID)
}
