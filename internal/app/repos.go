package app

import (
	"gorm.io/gorm"

	"github.com/arvetile/catalog-backend/internal/data/repos"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

type Repos struct {
	Products repos.ProductRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Products: repos.NewProductRepo(db, log),
	}
}
