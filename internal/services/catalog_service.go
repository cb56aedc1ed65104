// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/epoint/product-comparator/internal/config"
	"github.com/epoint/product-comparator/internal/models"
	"github.com/epoint/product-comparator/pkg/comparator"
)

// CatalogService implements the read-only catalog surface over Postgres.
// It returns the wire types from pkg/comparator so the HTTP layer and the
// embedded comparator core share one contract.
type CatalogService struct {
	db  *gorm.DB
	cfg config.CatalogConfig
}

func NewCatalogService(db *gorm.DB, cfg config.CatalogConfig) *CatalogService {
	return &CatalogService{db: db, cfg: cfg}
}

func (s *CatalogService) MaxResults() int {
	return s.cfg.MaxResults
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]comparator.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	out := make([]comparator.Category, 0, len(categories))
	for _, category := range categories {
		out = append(out, comparator.Category{
			Slug:  category.Slug,
			Name:  category.Name,
			Image: category.Image,
		})
	}
	return out, nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]comparator.Brand, error) {
	var brands []models.Brand
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}

	out := make([]comparator.Brand, 0, len(brands))
	for _, brand := range brands {
		out = append(out, comparator.Brand{Slug: brand.Slug, Name: brand.Name})
	}
	return out, nil
}

// likeEscaper neutralizes LIKE metacharacters so a user term matches
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// SearchProducts applies the facet conjunction over published products.
// Listings are capped; an empty filter returns the catalog head, ordered
// by name.
func (s *CatalogService) SearchProducts(ctx context.Context, filter comparator.Filter, limit int) ([]comparator.ProductSummary, error) {
	if limit < 1 || limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}

	query := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("products.status = ?", models.ProductStatusPublished)

	if filter.Brand != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id AND brands.slug = ?", filter.Brand)
	}

	if filter.Category != "" {
		query = query.
			Joins("JOIN product_categories ON product_categories.product_id = products.id").
			Joins("JOIN categories ON categories.id = product_categories.category_id AND categories.slug = ?", filter.Category)
	}

	if filter.Search != "" {
		searchTerm := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where("LOWER(products.name) LIKE ?", searchTerm)
	}

	var products []models.Product
	if err := query.Order("products.name ASC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	out := make([]comparator.ProductSummary, 0, len(products))
	for _, product := range products {
		out = append(out, comparator.ProductSummary{
			ID:    product.ID.String(),
			Name:  product.Name,
			Image: product.Image,
		})
	}
	return out, nil
}

// ListProducts satisfies the comparator client contract with the
// configured listing cap.
func (s *CatalogService) ListProducts(ctx context.Context, filter comparator.Filter) ([]comparator.ProductSummary, error) {
	return s.SearchProducts(ctx, filter, s.cfg.MaxResults)
}

func (s *CatalogService) GetProductDetail(ctx context.Context, id string) (*comparator.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", comparator.ErrNotFound, id)
	}

	var product models.Product
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.ProductStatusPublished).
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", comparator.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return toProductDetail(&product), nil
}

// AnchorBrandProducts preloads the carousel strip: every published product
// of the anchor brand together with its category slugs.
func (s *CatalogService) AnchorBrandProducts(ctx context.Context) ([]comparator.StripItem, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Preload("Categories").
		Joins("JOIN brands ON brands.id = products.brand_id AND brands.slug = ?", s.cfg.AnchorBrand).
		Where("products.status = ?", models.ProductStatusPublished).
		Order("products.name ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch anchor brand products: %w", err)
	}

	items := make([]comparator.StripItem, 0, len(products))
	for _, product := range products {
		item := comparator.StripItem{
			Product: comparator.ProductSummary{
				ID:    product.ID.String(),
				Name:  product.Name,
				Image: product.Image,
			},
		}
		for _, category := range product.Categories {
			item.Categories = append(item.Categories, category.Slug)
		}
		items = append(items, item)
	}
	return items, nil
}

func toProductDetail(product *models.Product) *comparator.Product {
	detail := &comparator.Product{
		ID:          product.ID.String(),
		Name:        product.Name,
		Image:       product.Image,
		Price:       product.PriceHTML,
		Permalink:   product.Permalink,
		Description: product.Description,
	}
	for _, attr := range product.Attributes {
		detail.Attributes = append(detail.Attributes, comparator.Attribute{
			Name:  attr.Name,
			Value: attr.Value,
		})
	}
	return detail
}
