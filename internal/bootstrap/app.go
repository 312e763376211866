package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/analysis"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/figures"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/services/health"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/shared/storage/object"
	localstore "jobboard-backend/internal/shared/storage/object/local"
	s3store "jobboard-backend/internal/shared/storage/object/s3"
	"jobboard-backend/internal/stats"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Store              object.ObjectStore
	Figures            *figures.Store
	JobsRepo           jobs.Repo
	ApplicationsRepo   applications.Repo
	JobsService        *jobs.Service
	ApplicationService *applications.Service
	StatsService       *stats.Service
	Fitter             *analysis.Fitter
}

// Build prepares dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pairings, err := stats.LoadPairings(cfg.StatsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load stats pairings: %w", err)
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Store:   store,
		Figures: figures.NewStore(store),
	}
	buildServices(app, pairings)

	var pinger health.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		JobHandler:         jobs.NewHandler(app.JobsService),
		ApplicationHandler: applications.NewHandler(app.ApplicationService),
		StatsHandler:       stats.NewHandler(app.StatsService),
		FigureHandler:      figures.NewHandler(app.Figures),
		Health:             health.NewService(pinger),
	})

	log.Printf("bootstrap: env=%s store=%s pairings=%d db=%t", cfg.Env, cfg.ObjectStoreType, len(pairings), sqlDB != nil)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if isDevLike(cfg.Env) {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
	}

	return sqlDB, nil
}

// buildStore creates the figure store root once; requests never create it.
func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.FiguresDir)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}

func buildServices(app *App, pairings []stats.Pairing) {
	if app.DB != nil {
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
	} else {
		app.JobsRepo = jobs.NewMemoryRepo()
		app.ApplicationsRepo = applications.NewMemoryRepo()
	}

	app.JobsService = jobs.NewService(app.JobsRepo)
	app.ApplicationService = applications.NewService(app.ApplicationsRepo, app.JobsRepo)
	app.Fitter = analysis.NewFitter(figures.NewIDGenerator(), app.Figures)
	app.StatsService = stats.NewService(app.JobsRepo, app.ApplicationsRepo, app.Fitter, pairings)
}
