package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

type ProfileRepo interface {
	Create(ctx context.Context, p *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (*model.Profile, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.Profile, error)
	ListByArchetype(ctx context.Context, archetype model.Archetype) ([]*model.Profile, error)
}

type profileRepo struct {
	collection *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) Create(ctx context.Context, p *model.Profile) error {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	var p model.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) GetByAssessmentID(ctx context.Context, assessmentID string) (*model.Profile, error) {
	var p model.Profile
	err := r.collection.FindOne(ctx, bson.M{"assessmentId": assessmentID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) ListRecent(ctx context.Context, limit int64) ([]*model.Profile, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.Profile
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) ListByArchetype(ctx context.Context, archetype model.Archetype) ([]*model.Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"archetype": archetype})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.Profile
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
