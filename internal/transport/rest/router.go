package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"milletsurvey/internal/catalog"
	"milletsurvey/internal/repository"
	"milletsurvey/internal/service"
	"milletsurvey/internal/transport/rest/handler"
	"milletsurvey/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	InterviewService *service.InterviewService
	AnalyticsService *service.AnalyticsService
	ReportService    *service.ReportService
	ResponseRepo     repository.ResponseRepo
	Catalog          *catalog.Catalog
	AllowedOrigins   string
	Logger           *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService, c.Catalog)
	responseHandler := handler.NewResponseHandler(c.ResponseRepo, c.Logger)
	dashboardHandler := handler.NewDashboardHandler(c.AnalyticsService)
	reportHandler := handler.NewReportHandler(c.ReportService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware(c.AllowedOrigins))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes: login and the enumerator interview flow
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/catalog", interviewHandler.Catalog).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews", interviewHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{sessionId}", interviewHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{sessionId}/answers", interviewHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{sessionId}/next", interviewHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{sessionId}/previous", interviewHandler.Previous).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require access-code auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/responses", responseHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/responses/{id}", responseHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/responses/{id}", responseHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/dashboard", dashboardHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/reports/export", reportHandler.Export).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
