// internal/handlers/catalog.go
package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/epoint/product-comparator/internal/i18n"
	"github.com/epoint/product-comparator/internal/utils"
	"github.com/epoint/product-comparator/pkg/comparator"
)

// CatalogProvider is the slice of the catalog service the HTTP surface
// needs. Keeping it an interface lets the handler tests run against an
// in-memory catalog.
type CatalogProvider interface {
	ListCategories(ctx context.Context) ([]comparator.Category, error)
	ListBrands(ctx context.Context) ([]comparator.Brand, error)
	SearchProducts(ctx context.Context, filter comparator.Filter, limit int) ([]comparator.ProductSummary, error)
	GetProductDetail(ctx context.Context, id string) (*comparator.Product, error)
	AnchorBrandProducts(ctx context.Context) ([]comparator.StripItem, error)
	MaxResults() int
}

type CatalogHandler struct {
	catalog CatalogProvider
}

func NewCatalogHandler(catalog CatalogProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /catalog/brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalog.ListBrands(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, brands)
}

type productQuery struct {
	Search   string `form:"search"`
	Category string `form:"category" validate:"omitempty,slug"`
	Brand    string `form:"brand" validate:"omitempty,slug"`
}

// GET /catalog/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var query productQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&query)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	filter := comparator.Filter{
		Search:   query.Search,
		Category: query.Category,
		Brand:    query.Brand,
	}
	limit := utils.GetLimitParam(c, h.catalog.MaxResults())

	products, err := h.catalog.SearchProducts(c.Request.Context(), filter, limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// An empty listing is a result, not an error; the widget renders its
	// own "no products" state.
	utils.SuccessResponse(c, products)
}

// GET /catalog/products/:id
func (h *CatalogHandler) GetProductDetail(c *gin.Context) {
	product, err := h.catalog.GetProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, comparator.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /catalog/strip
func (h *CatalogHandler) GetStrip(c *gin.Context) {
	items, err := h.catalog.AnchorBrandProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, items)
}

type legacyQuery struct {
	Action    string `form:"action" validate:"required"`
	Search    string `form:"search"`
	Category  string `form:"category" validate:"omitempty,slug"`
	Brand     string `form:"brand" validate:"omitempty,slug"`
	ProductID string `form:"product_id"`
}

// POST /catalog/query
//
// The widget's previous backend multiplexed everything over one POST
// endpoint with an action discriminator. This keeps deployed embeds
// working until they move to the REST routes.
func (h *CatalogHandler) LegacyQuery(c *gin.Context) {
	var query legacyQuery
	if err := c.ShouldBind(&query); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&query)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	switch query.Action {
	case "get_product_categories":
		h.GetCategories(c)
	case "get_product_brands":
		h.GetBrands(c)
	case "get_products":
		filter := comparator.Filter{
			Search:   query.Search,
			Category: query.Category,
			Brand:    query.Brand,
		}
		products, err := h.catalog.SearchProducts(c.Request.Context(), filter, h.catalog.MaxResults())
		if err != nil {
			utils.InternalErrorResponse(c, err.Error())
			return
		}
		utils.SuccessResponse(c, products)
	case "get_product_details":
		if query.ProductID == "" {
			utils.BadRequestResponse(c, "No product ID specified", nil)
			return
		}
		product, err := h.catalog.GetProductDetail(c.Request.Context(), query.ProductID)
		if err != nil {
			if errors.Is(err, comparator.ErrNotFound) {
				utils.NotFoundResponse(c, i18n.KeyProductNotFound)
				return
			}
			utils.InternalErrorResponse(c, err.Error())
			return
		}
		utils.SuccessResponse(c, product)
	default:
		utils.BadRequestResponse(c, "Unknown action: "+query.Action, nil)
	}
}
