package service

import (
	"context"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseRequestService struct {
	repo       *repository.CourseRequestRepository
	courseRepo *repository.CourseRepository
	courseSvc  *CourseService
}

func NewCourseRequestService(
	repo *repository.CourseRequestRepository,
	courseRepo *repository.CourseRepository,
	courseSvc *CourseService,
) *CourseRequestService {
	return &CourseRequestService{
		repo:       repo,
		courseRepo: courseRepo,
		courseSvc:  courseSvc,
	}
}

// Crear request (alumno)
func (s *CourseRequestService) CreateRequest(
	ctx context.Context,
	userID int,
	req *models.CourseCreateRequest,
) (*models.CourseRequest, error) {

	now := time.Now()

	cr := &models.CourseRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Status:    models.CourseRequestStatusPending,
		Course:    *req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, cr); err != nil {
		return nil, err
	}
	return cr, nil
}

func (s *CourseRequestService) ListMine(
	ctx context.Context,
	userID int,
	status string,
	limit, offset int,
) ([]models.CourseRequest, error) {

	return s.repo.FindByUser(ctx, userID, status, limit, offset)
}

func (s *CourseRequestService) ListAll(
	ctx context.Context,
	status string,
	limit, offset int,
) ([]models.CourseRequest, error) {

	return s.repo.FindAll(ctx, status, limit, offset)
}

// Aprobar request: crea el curso en el catálogo y marca el request como
// approved. El curso entra al ranking del recomendador recién después del
// próximo reinicio (el engine trabaja sobre el snapshot del arranque).
func (s *CourseRequestService) Approve(
	ctx context.Context,
	id primitive.ObjectID,
	override *models.CourseCreateRequest,
) (*models.CourseRequest, *models.CourseDoc, error) {

	cr, err := s.repo.FindByID(ctx, id)
	if err != nil || cr == nil {
		return cr, nil, err
	}
	if cr.Status != models.CourseRequestStatusPending {
		return cr, nil, nil // handler puede devolver 400 si no está pending
	}

	// Datos finales del curso = request original + override (si viene)
	payload := cr.Course
	if override != nil {
		if override.CourseID != "" {
			payload.CourseID = override.CourseID
		}
		if override.CourseName != "" {
			payload.CourseName = override.CourseName
		}
		if override.Credits > 0 {
			payload.Credits = override.Credits
		}
		if len(override.Tags) > 0 {
			payload.Tags = override.Tags
		}
		if override.Description != "" {
			payload.Description = override.Description
		}
		if override.Difficulty > 0 {
			payload.Difficulty = override.Difficulty
		}
		if override.Workload > 0 {
			payload.Workload = override.Workload
		}
		if override.Type != "" {
			payload.Type = override.Type
		}
		if len(override.Prerequisites) > 0 {
			payload.Prerequisites = override.Prerequisites
		}
	}

	course, err := s.courseSvc.CreateCourse(ctx, &payload)
	if err != nil {
		return cr, nil, err
	}

	cr.Status = models.CourseRequestStatusApproved
	cr.ApprovedCourseID = &course.CourseID
	cr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, cr); err != nil {
		return cr, course, err
	}

	return cr, course, nil
}

// Rechazar request
func (s *CourseRequestService) Reject(
	ctx context.Context,
	id primitive.ObjectID,
	reason string,
) (*models.CourseRequest, error) {

	cr, err := s.repo.FindByID(ctx, id)
	if err != nil || cr == nil {
		return cr, err
	}
	if cr.Status != models.CourseRequestStatusPending {
		return cr, nil
	}

	cr.Status = models.CourseRequestStatusRejected
	cr.Reason = reason
	cr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, cr); err != nil {
		return cr, err
	}
	return cr, nil
}
