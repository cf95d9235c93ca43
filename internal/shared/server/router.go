package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/ats"
	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/llm/gemini"
	"resumeiq-backend/internal/llm/openrouter"
	"resumeiq-backend/internal/scores"
	"resumeiq-backend/internal/shared/config"
	"resumeiq-backend/internal/shared/metrics"
	"resumeiq-backend/internal/shared/server/middleware"
	"resumeiq-backend/internal/shared/server/respond"
	"resumeiq-backend/internal/shared/storage/db"
	"resumeiq-backend/internal/targets"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/score" {
					return "SCORE"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: float64(cfg.RateLimitRPM) / 60.0, Burst: cfg.RateLimitBurst * 2},
				"SCORE":   {Rate: float64(cfg.RateLimitRPM) / 60.0, Burst: cfg.RateLimitBurst},
			},
		}),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var scoreRepo scores.Repo
	if sqlDB != nil {
		scoreRepo = &scores.PGRepo{DB: sqlDB}
	} else {
		scoreRepo = scores.NewMemoryRepo()
	}

	generator := newGenerator(cfg)
	scoreSvc := &scores.Service{
		Repo:   scoreRepo,
		Scorer: ats.NewScorer(&targets.Resolver{Generator: generator}),
	}
	scoreHandler := scores.NewHandler(scoreSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	scoreHandler.RegisterRoutes(api)

	return r
}

// newGenerator builds the configured LLM client, or nil when no provider
// is configured so scoring falls back to resume-derived targets.
func newGenerator(cfg config.Config) llm.Generator {
	switch cfg.LLMProvider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("gemini client unavailable, falling back to resume-derived targets: %v", err)
			return nil
		}
		return client
	case "openrouter":
		client, err := openrouter.NewClient(cfg.OpenRouterKey, cfg.LLMModel)
		if err != nil {
			log.Printf("openrouter client unavailable, falling back to resume-derived targets: %v", err)
			return nil
		}
		return client
	default:
		return nil
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
