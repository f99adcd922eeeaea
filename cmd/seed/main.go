package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/assessment"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/config"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/repository"
)

// Seeds the questions collection with the current catalog so the admin
// console can browse it. The engine itself does not read this collection.
func main() {
	cfg := config.Load()

	bank, err := loadBank(cfg)
	if err != nil {
		log.Fatal("Failed to load question bank: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB: ", err)
	}

	db := client.Database(cfg.MongoDatabase)
	bankRepo := repository.NewBankRepo(db)

	if err := bankRepo.ReplaceAll(ctx, bank.Questions()); err != nil {
		log.Fatal("Failed to seed questions: ", err)
	}

	log.Printf("Seeded %d questions into %s.questions", bank.Len(), cfg.MongoDatabase)
}

func loadBank(cfg *config.Config) (*assessment.Bank, error) {
	if cfg.QuestionBankPath != "" {
		return assessment.LoadBankFile(cfg.QuestionBankPath)
	}
	return assessment.DefaultBank()
}
