package repository

import (
	"context"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/db"
	"github.com/jcljr27/course-recommender-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentRepository struct {
	col *mongo.Collection
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{col: db.DB().Collection("student_profiles")}
}

func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.StudentProfileDoc, error) {
	var p models.StudentProfileDoc
	err := r.col.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

// Upsert crea o reemplaza el perfil del alumno.
func (r *StudentRepository) Upsert(ctx context.Context, p *models.StudentProfileDoc) error {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if p.CreatedAt == "" {
		p.CreatedAt = p.UpdatedAt
	}
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"studentId": p.StudentID},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}

// UpdateByStudentID aplica un $set parcial sobre el perfil.
func (r *StudentRepository) UpdateByStudentID(ctx context.Context, studentID string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"studentId": studentID},
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

func (r *StudentRepository) List(ctx context.Context, limit, offset int) ([]models.StudentProfileDoc, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "studentId", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.StudentProfileDoc
	for cur.Next(ctx) {
		var p models.StudentProfileDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// ReplaceAll borra y resiembra los perfiles (cmd/import).
func (r *StudentRepository) ReplaceAll(ctx context.Context, profiles []models.StudentProfileDoc) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(profiles) == 0 {
		return nil
	}
	docs := make([]any, len(profiles))
	for i := range profiles {
		docs[i] = profiles[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}
