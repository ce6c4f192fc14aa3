package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/permit-checklist-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/api/http/middleware"
	checklisthttp "github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/http"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/repository"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/resolver"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/service"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/logger"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

// FunctionPath is the single-function style route kept next to the API group.
const FunctionPath = "/generatePermitChecklist"

// RouterDeps are the router's collaborators. Store and Resolver are required.
type RouterDeps struct {
	ServiceName string
	Version     string
	Logger      *logger.Logger
	Store       *storage.Lazy
	Resolver    resolver.Resolver
	Metrics     *metrics.Metrics
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
}

func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Logger == nil {
		dep.Logger = logger.NewNop()
	}
	if dep.Metrics == nil {
		dep.Metrics = metrics.New(nil)
	}

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(dep.Metrics.Middleware())
	r.Use(middleware.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	var probe httpapi.StoreProbe
	if dep.Store != nil {
		probe = dep.Store
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, probe)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))

	svc := service.NewChecklistService(
		dep.Resolver,
		repository.NewBlueprintRepository(dep.Store),
		repository.NewChecklistRepository(dep.Store),
	)
	handler := checklisthttp.New(svc, dep.Metrics)
	limit := middleware.RateLimitMiddleware(dep.RateRPS, dep.RateBurst)

	api := r.Group("/api/v1")
	api.Use(limit)
	handler.Register(api)

	r.Any(FunctionPath, limit, handler.GenerateChecklist)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
