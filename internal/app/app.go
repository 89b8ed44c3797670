package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/arvetile/catalog-backend/internal/assets"
	"github.com/arvetile/catalog-backend/internal/catalog"
	"github.com/arvetile/catalog-backend/internal/db"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

type App struct {
	Log     *logger.Logger
	DB      *gorm.DB
	Cfg     Config
	Mapping *catalog.Mapping
	Repos   Repos
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	mapping, err := catalog.Load(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load mapping: %w", err)
	}

	store, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("store automigrate: %w", err)
	}
	theDB := store.DB()

	reposet := wireRepos(theDB, log)

	return &App{
		Log:     log,
		DB:      theDB,
		Cfg:     cfg,
		Mapping: mapping,
		Repos:   reposet,
	}, nil
}

// DecorLibrary is the lifestyle-shot tree, one dimension folder deep.
func (a *App) DecorLibrary() assets.Library {
	return assets.Library{
		Root:         a.Cfg.DecorRoot,
		PublicPrefix: a.Cfg.DecorPublicPrefix,
		Layout:       assets.LayoutFlat,
	}
}

// TextureLibrary is the close-up tree, dimension then surface folder.
func (a *App) TextureLibrary() assets.Library {
	return assets.Library{
		Root:         a.Cfg.TextureRoot,
		PublicPrefix: a.Cfg.TexturePublicPrefix,
		Layout:       assets.LayoutNested,
	}
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
