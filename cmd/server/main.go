package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/assessment"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/cache"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/config"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/repository"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/service"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/transport/rest"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Question bank: built-in catalog, optionally overridden from YAML.
	// Validation failures here are configuration errors and abort startup.
	bank, err := loadBank(cfg)
	if err != nil {
		log.Fatal("Failed to load question bank: ", err)
	}
	log.Printf("Question bank loaded: %d questions", bank.Len())

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB: ", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis: ", err)
	}
	log.Println("Connected to Redis")

	// WebSocket hub for the admin live feed
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Repositories
	assessmentRepo := repository.NewAssessmentRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	// Caches
	sessionCache := cache.NewSessionCache(rdb)
	statsCache := cache.NewStatsCache(rdb)

	// Services
	authSvc := service.NewAuthService(cfg)
	assessmentSvc := service.NewAssessmentService(bank, assessmentRepo, profileRepo, sessionCache, statsCache, authSvc)
	statsSvc := service.NewStatsService(statsCache, profileRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		StatsService:      statsSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/assessments")
		log.Println("  GET  /v1/assessments/{id}/question/current")
		log.Println("  POST /v1/assessments/{id}/answers")
		log.Println("  POST /v1/assessments/{id}/complete")
		log.Println("  GET  /v1/assessments/{id}/profile")
		log.Println("  GET  /v1/admin/stats")
		log.Println("  GET  /v1/admin/profiles")
		log.Println("  WS   /v1/ws/admin")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe: ", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exited")
}

func loadBank(cfg *config.Config) (*assessment.Bank, error) {
	if cfg.QuestionBankPath != "" {
		log.Printf("Loading question bank from %s", cfg.QuestionBankPath)
		return assessment.LoadBankFile(cfg.QuestionBankPath)
	}
	return assessment.DefaultBank()
}
