package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// BankRepo stores the question catalog for the admin console. The engine
// itself runs off the validated in-memory bank; this collection exists so the
// console can browse and edit questions.
type BankRepo interface {
	ReplaceAll(ctx context.Context, questions []model.Question) error
	GetAll(ctx context.Context) ([]model.Question, error)
}

type bankRepo struct {
	collection *mongo.Collection
}

func NewBankRepo(db *mongo.Database) BankRepo {
	return &bankRepo{
		collection: db.Collection("questions"),
	}
}

func (r *bankRepo) ReplaceAll(ctx context.Context, questions []model.Question) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *bankRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []model.Question
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
