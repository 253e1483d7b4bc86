// internal/repository/course_repo.go
package repository

import (
	"context"

	"github.com/jcljr27/course-recommender-backend/internal/db"
	"github.com/jcljr27/course-recommender-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{col: db.DB().Collection("courses")}
}

// ListAll devuelve el catálogo completo en orden de inserción. Es la carga
// que hace el recomendador una sola vez al arrancar: el orden de las filas
// de la matriz de features es exactamente este.
func (r *CourseRepository) ListAll(ctx context.Context) ([]models.CourseDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CourseDoc
	for cur.Next(ctx) {
		var c models.CourseDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *CourseRepository) GetByCourseID(ctx context.Context, courseID string) (*models.CourseDoc, error) {
	var c models.CourseDoc
	err := r.col.FindOne(ctx, bson.M{"courseId": courseID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &c, err
}

func (r *CourseRepository) Search(
	ctx context.Context,
	q string,
	tag string,
	courseType string,
	diffFrom, diffTo int,
	limit, offset int,
) ([]models.CourseDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["$or"] = bson.A{
			bson.M{"courseName": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if tag != "" {
		// tags es un array, esto busca que lo contenga
		filter["tags"] = tag
	}
	if courseType != "" {
		filter["type"] = courseType
	}
	if diffFrom > 0 || diffTo > 0 {
		diffCond := bson.M{}
		if diffFrom > 0 {
			diffCond["$gte"] = diffFrom
		}
		if diffTo > 0 {
			diffCond["$lte"] = diffTo
		}
		filter["difficulty"] = diffCond
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CourseDoc
	for cur.Next(ctx) {
		var c models.CourseDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *CourseRepository) Insert(ctx context.Context, c *models.CourseDoc) error {
	_, err := r.col.InsertOne(ctx, c)
	return err
}

// Update aplica un $set parcial sobre el curso.
func (r *CourseRepository) Update(ctx context.Context, courseID string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"courseId": courseID},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ReplaceAll borra el catálogo y lo vuelve a insertar (usado por cmd/import
// para resembrar desde courses.json).
func (r *CourseRepository) ReplaceAll(ctx context.Context, courses []models.CourseDoc) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(courses) == 0 {
		return nil
	}
	docs := make([]any, len(courses))
	for i := range courses {
		docs[i] = courses[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}
