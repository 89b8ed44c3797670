package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arvetile/catalog-backend/internal/domain"
)

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, dimension string) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		ID:        uuid.New(),
		Slug:      uuid.NewString(),
		Name:      name,
		Dimension: dimension,
		Surface:   "Matt",
		Color:     "Natural",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedProductWithDecor(tb testing.TB, ctx context.Context, tx *gorm.DB, name, dimension, decorURL string) *domain.Product {
	tb.Helper()
	p := SeedProduct(tb, ctx, tx, name, dimension)
	if err := tx.WithContext(ctx).Model(p).Update("decor_image_url", decorURL).Error; err != nil {
		tb.Fatalf("seed decor url: %v", err)
	}
	p.DecorImageURL = &decorURL
	return p
}
