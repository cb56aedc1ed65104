// internal/handlers/comparison.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/epoint/product-comparator/internal/i18n"
	"github.com/epoint/product-comparator/internal/services"
	"github.com/epoint/product-comparator/internal/utils"
	"github.com/epoint/product-comparator/pkg/comparator"
)

type ComparisonHandler struct {
	comparisons *services.ComparisonService
}

func NewComparisonHandler(comparisons *services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparisons: comparisons}
}

type selectSlotRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// POST /comparisons
func (h *ComparisonHandler) CreateComparison(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	view := h.comparisons.CreateSession()

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyComparisonCreated),
		"comparison": view,
	})
}

// GET /comparisons/:id
func (h *ComparisonHandler) GetComparison(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.comparisons.GetSession(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"comparison": view})
}

// PUT /comparisons/:id/slots/:slot
func (h *ComparisonHandler) SelectSlot(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	slot, ok := h.slotParam(c)
	if !ok {
		return
	}

	var req selectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	view, err := h.comparisons.SelectSlot(c.Request.Context(), id, slot, req.ProductID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyComparisonProductAdded),
		"comparison": view,
	})
}

// DELETE /comparisons/:id/slots/:slot
func (h *ComparisonHandler) RemoveSlot(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	slot, ok := h.slotParam(c)
	if !ok {
		return
	}

	view, err := h.comparisons.RemoveSlot(id, slot)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyComparisonSlotCleared),
		"comparison": view,
	})
}

// DELETE /comparisons/:id
func (h *ComparisonHandler) DeleteComparison(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.comparisons.DeleteSession(id); err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, nil)
}

func (h *ComparisonHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid comparison ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ComparisonHandler) slotParam(c *gin.Context) (int, bool) {
	lang := utils.GetLangFromContext(c)
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyComparisonSlotInvalid), nil)
		return 0, false
	}
	return slot, true
}

func (h *ComparisonHandler) respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.NotFoundResponse(c, i18n.KeyComparisonNotFound)
	case errors.Is(err, comparator.ErrInvalidSlot):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyComparisonSlotInvalid), nil)
	case errors.Is(err, services.ErrSlotNotOpen):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyComparisonSlotNotOpen))
	case errors.Is(err, comparator.ErrNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, comparator.ErrCatalogUnavailable):
		utils.CatalogUnavailableResponse(c)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
