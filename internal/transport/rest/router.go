package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/service"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/transport/rest/handler"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/transport/rest/middleware"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	StatsService      *service.StatsService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	adminHandler := handler.NewAdminHandler(c.StatsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/admin", wsHandler.AdminWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Rider routes (require assessment-scoped token)
	riderRoutes := v1.NewRoute().Subrouter()
	riderRoutes.Use(authMW.RequireRider)

	riderRoutes.HandleFunc("/assessments/{id}/question/current", assessmentHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	riderRoutes.HandleFunc("/assessments/{id}/answers", assessmentHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	riderRoutes.HandleFunc("/assessments/{id}/complete", assessmentHandler.Complete).Methods("POST", "OPTIONS")
	riderRoutes.HandleFunc("/assessments/{id}/profile", assessmentHandler.GetProfile).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/stats", adminHandler.Stats).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/profiles", adminHandler.ListProfiles).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/profiles/{id}", adminHandler.GetProfile).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
