// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Brand struct {
	BaseModel
	Name string `json:"name" gorm:"size:120;not null"`
	Slug string `json:"slug" gorm:"size:120;uniqueIndex;not null"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:BrandID"`
}

type Category struct {
	BaseModel
	Name  string `json:"name" gorm:"size:120;not null"`
	Slug  string `json:"slug" gorm:"size:120;uniqueIndex;not null"`
	Image string `json:"image,omitempty" gorm:"size:500"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"many2many:product_categories"`
}

type Product struct {
	BaseModel
	Name        string        `json:"name" gorm:"size:255;not null"`
	Slug        string        `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Image       string        `json:"image,omitempty" gorm:"size:500"`
	PriceHTML   string        `json:"price" gorm:"column:price_html;size:255"` // pre-formatted display string, opaque here
	Permalink   string        `json:"permalink" gorm:"size:500"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Attributes  AttributeList `json:"attributes" gorm:"type:jsonb"`
	Tags        pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
	Status      ProductStatus `json:"status" gorm:"type:varchar(20);default:'published';index"`
	BrandID     *uuid.UUID    `json:"brand_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Brand      *Brand     `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:product_categories"`
}
