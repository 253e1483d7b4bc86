package repository

import (
	"context"

	"github.com/jcljr27/course-recommender-backend/internal/db"
	"github.com/jcljr27/course-recommender-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CourseRequestRepository struct {
	col *mongo.Collection
}

func NewCourseRequestRepository() *CourseRequestRepository {
	return &CourseRequestRepository{
		col: db.DB().Collection("course_requests"),
	}
}

func (r *CourseRequestRepository) Insert(ctx context.Context, cr *models.CourseRequest) error {
	_, err := r.col.InsertOne(ctx, cr)
	return err
}

func (r *CourseRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CourseRequest, error) {
	var cr models.CourseRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &cr, err
}

func (r *CourseRequestRepository) Update(ctx context.Context, cr *models.CourseRequest) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": cr.ID}, cr)
	return err
}

func (r *CourseRequestRepository) FindByUser(
	ctx context.Context,
	userID int,
	status string,
	limit, offset int,
) ([]models.CourseRequest, error) {

	filter := bson.M{"userId": userID}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	return r.find(ctx, filter, limit, offset)
}

func (r *CourseRequestRepository) FindAll(
	ctx context.Context,
	status string,
	limit, offset int,
) ([]models.CourseRequest, error) {

	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	return r.find(ctx, filter, limit, offset)
}

func (r *CourseRequestRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]models.CourseRequest, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CourseRequest
	for cur.Next(ctx) {
		var cr models.CourseRequest
		if err := cur.Decode(&cr); err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, cur.Err()
}
