package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"insurance-leadgen-backend/internal/config"
	"insurance-leadgen-backend/internal/handlers"
	"insurance-leadgen-backend/internal/middleware"
	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/repository"
	"insurance-leadgen-backend/internal/service"
	"insurance-leadgen-backend/pkg/cache"
	"insurance-leadgen-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	rateLimits *middleware.RateLimitManager
	router     *gin.Engine
	server     *http.Server
}

type repositoryContainer struct {
	Template repository.TemplateRepository
	Lead     repository.LeadRepository
	Setting  repository.SettingRepository
}

type serviceContainer struct {
	Template  *service.TemplateService
	Lead      *service.LeadService
	Popup     *service.PopupService
	Analytics *service.AnalyticsService
}

type handlerContainer struct {
	Template  *handlers.TemplateHandler
	Builder   *handlers.BuilderHandler
	Lead      *handlers.LeadHandler
	Popup     *handlers.PopupHandler
	Analytics *handlers.AnalyticsHandler
}

func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()
	app.initHandlers()

	app.rateLimits = middleware.NewRateLimitManager(ctx)
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimits != nil {
		if err := a.rateLimits.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limit manager", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Template{},
		&models.Lead{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_templates_published ON templates(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_templates_created_at ON templates(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_templates_sections ON templates USING GIN (sections)",
		"CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at DESC)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() {
	enable := a.cfg.EnableCache && a.cfg.EnableRedis
	c, err := cache.NewCache(a.cfg.RedisURL, enable)
	if err != nil {
		logger.Error(err, "Redis unavailable, continuing without cache", nil)
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Template: repository.NewTemplateRepository(a.db),
		Lead:     repository.NewLeadRepository(a.db),
		Setting:  repository.NewSettingRepository(a.db),
	}
}

func (a *Application) initServices() {
	a.services = serviceContainer{
		Template:  service.NewTemplateService(a.repositories.Template, a.cache),
		Lead:      service.NewLeadService(a.repositories.Lead, a.cfg),
		Popup:     service.NewPopupService(a.repositories.Setting),
		Analytics: service.NewAnalyticsService(a.cache, a.cfg),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Template:  handlers.NewTemplateHandler(a.services.Template),
		Builder:   handlers.NewBuilderHandler(),
		Lead:      handlers.NewLeadHandler(a.services.Lead),
		Popup:     handlers.NewPopupHandler(a.services.Popup),
		Analytics: handlers.NewAnalyticsHandler(a.services.Analytics),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.RateLimitMiddleware(a.rateLimits, a.cfg))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/templates", a.handlers.Template.GetTemplates)
		v1.GET("/templates/:id", a.handlers.Template.GetTemplate)
		v1.GET("/templates/slug/:slug", a.handlers.Template.GetTemplateBySlug)
		v1.POST("/templates", a.handlers.Template.CreateTemplate)
		v1.PATCH("/templates/:id", a.handlers.Template.UpdateTemplate)
		v1.DELETE("/templates/:id", a.handlers.Template.DeleteTemplate)
		v1.POST("/templates/:id/duplicate", a.handlers.Template.DuplicateTemplate)

		v1.GET("/builder/config", a.handlers.Builder.GetConfig)
		v1.GET("/builder/sample-variables", a.handlers.Builder.GetSampleVariables)
		v1.POST("/builder/preview", a.handlers.Builder.Preview)
		v1.POST("/builder/canvas", a.handlers.Builder.RenderCanvas)

		v1.POST("/leads", a.handlers.Lead.CreateLead)
		v1.GET("/leads", a.handlers.Lead.GetRecentLeads)

		v1.GET("/popups", a.handlers.Popup.GetPopups)
		v1.PUT("/popups", a.handlers.Popup.UpdatePopups)

		v1.POST("/events", a.handlers.Analytics.RecordEvent)
	}

	a.router = router
}
