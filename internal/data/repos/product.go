package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

// ErrProductNotFound reports an image update against an id that is not in
// the store (stale row between scan and write, or a bad seed).
var ErrProductNotFound = errors.New("product not found")

var imageColumns = map[string]bool{
	string(domain.FieldImageURL):         true,
	string(domain.FieldDecorImageURL):    true,
	string(domain.FieldAdditionalImages): true,
	string(domain.FieldTextureImages):    true,
}

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*domain.Product) ([]*domain.Product, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Product, error)
	// UpdateImages overwrites the named image columns of one row. Only the
	// four image columns are writable through this repo; the patch never
	// merges with existing content.
	UpdateImages(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch map[string]any) error
	// DeleteAll wipes the catalog. Used only by the seeding pass.
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*domain.Product) ([]*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(products) == 0 {
		return []*domain.Product{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Product
	if err := transaction.WithContext(ctx).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.Product
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *productRepo) UpdateImages(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(patch) == 0 {
		return nil
	}
	for column := range patch {
		if !imageColumns[column] {
			return fmt.Errorf("column %q is not an image column", column)
		}
	}

	res := transaction.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&domain.Product{}).Error
}
