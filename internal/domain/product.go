package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is one catalog row. The reconciliation pipeline treats the row as
// given input and only ever writes the image columns; everything else belongs
// to the catalog's own CRUD lifecycle.
type Product struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name string    `gorm:"column:name;not null" json:"name"`

	Dimension string `gorm:"column:dimension;index" json:"dimension"`
	Surface   string `gorm:"column:surface" json:"surface"`
	Color     string `gorm:"column:color" json:"color"`

	ImageURL         *string        `gorm:"column:image_url" json:"image_url,omitempty"`
	DecorImageURL    *string        `gorm:"column:decor_image_url" json:"decor_image_url,omitempty"`
	AdditionalImages datatypes.JSON `gorm:"column:additional_images;type:jsonb" json:"additional_images"`
	TextureImages    datatypes.JSON `gorm:"column:texture_images;type:jsonb" json:"texture_images"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "product" }

// ImageField names a product image column the pipeline is allowed to write.
type ImageField string

const (
	FieldImageURL         ImageField = "image_url"
	FieldDecorImageURL    ImageField = "decor_image_url"
	FieldAdditionalImages ImageField = "additional_images"
	FieldTextureImages    ImageField = "texture_images"
)

// Single reports whether the field holds one URL rather than a JSON list.
func (f ImageField) Single() bool {
	return f == FieldImageURL || f == FieldDecorImageURL
}
