package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type StudentService struct {
	students *repository.StudentRepository
}

func NewStudentService(r *repository.StudentRepository) *StudentService {
	return &StudentService{students: r}
}

func (s *StudentService) GetProfile(ctx context.Context, studentID string) (*models.StudentProfileDoc, error) {
	return s.students.GetByStudentID(ctx, studentID)
}

func (s *StudentService) List(ctx context.Context, limit, offset int) ([]models.StudentProfileDoc, error) {
	return s.students.List(ctx, limit, offset)
}

// CreateProfile crea el perfil académico de un alumno.
func (s *StudentService) CreateProfile(ctx context.Context, p *models.StudentProfileDoc) (*models.StudentProfileDoc, error) {
	if p.StudentID == "" {
		return nil, fmt.Errorf("student_id is required")
	}
	if err := validateDifficulty(p.PreferredDifficulty); err != nil {
		return nil, err
	}

	existing, err := s.students.GetByStudentID(ctx, p.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("student_id %s already exists", p.StudentID)
	}

	if p.CompletedCourses == nil {
		p.CompletedCourses = []string{}
	}
	if p.InterestTags == nil {
		p.InterestTags = []string{}
	}

	if err := s.students.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile actualiza campos opcionales del perfil.
func (s *StudentService) UpdateProfile(ctx context.Context, studentID string, req *models.StudentProfileUpdateRequest) (*models.StudentProfileDoc, error) {
	existing, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	update := bson.M{}
	if req.Major != nil {
		update["major"] = *req.Major
	}
	if req.PreferredDifficulty != nil {
		if err := validateDifficulty(*req.PreferredDifficulty); err != nil {
			return nil, err
		}
		update["preferredDifficulty"] = *req.PreferredDifficulty
	}
	if req.Notes != nil {
		update["notes"] = *req.Notes
	}
	if req.CompletedCourses != nil {
		update["completedCourses"] = *req.CompletedCourses
	}
	if req.InterestTags != nil {
		update["interestTags"] = *req.InterestTags
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.students.UpdateByStudentID(ctx, studentID, update); err != nil {
		return nil, err
	}
	return s.students.GetByStudentID(ctx, studentID)
}

func validateDifficulty(d string) error {
	switch d {
	case "", "easy", "medium", "hard":
		return nil
	}
	return fmt.Errorf("invalid preferred_difficulty (must be easy|medium|hard)")
}
