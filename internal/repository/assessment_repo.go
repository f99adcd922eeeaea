package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

type AssessmentRepo interface {
	Create(ctx context.Context, a *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	GetByRiderID(ctx context.Context, riderID string) ([]*model.Assessment, error)
	Update(ctx context.Context, a *model.Assessment) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, a *model.Assessment) error {
	if a.ID == "" {
		a.ID = primitive.NewObjectID().Hex()
	}
	if a.StartedAt.IsZero() {
		a.StartedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, a)
	return err
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepo) GetByRiderID(ctx context.Context, riderID string) ([]*model.Assessment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"riderId": riderID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.Assessment
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *assessmentRepo) Update(ctx context.Context, a *model.Assessment) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	return err
}
