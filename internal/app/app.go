package app

import (
	"context"

	"learndash/internal/config"
	"learndash/internal/db"
	"learndash/internal/handlers"
	"learndash/internal/logger"
	"learndash/internal/repository"
	"learndash/internal/routes"
	"learndash/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type App struct {
	Router *mux.Router
	pool   *pgxpool.Pool
}

// InitApp opens the database, applies the schema when configured and wires the router.
func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("database connected", zap.String("dsn", cfg.DSNSafe()))

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
		logger.Log.Info("schema applied")
	}

	return &App{Router: NewRouter(repository.NewContentRepo(conn)), pool: conn}, nil
}

// NewRouter builds services and handlers on top of store.
func NewRouter(store services.ContentStore) *mux.Router {
	// Services
	progressSvc := services.NewProgressService(store)
	languageSvc := services.NewLanguageService(store, progressSvc)
	sectionSvc := services.NewSectionService(store)
	subsectionSvc := services.NewSubsectionService(store)

	// Handlers
	languageH := handlers.NewLanguageHandler(languageSvc, progressSvc)
	sectionH := handlers.NewSectionHandler(sectionSvc)
	subsectionH := handlers.NewSubsectionHandler(subsectionSvc)

	router := mux.NewRouter()
	routes.InitRoutes(router, languageH, sectionH, subsectionH)
	return router
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
