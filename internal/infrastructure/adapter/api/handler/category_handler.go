package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	ledgerUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/ledger"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Create handles the POST /api/categories endpoint
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: errs.ErrEmptyCategoryName.Error(),
		})
		return
	}

	category, err := h.ledgerService.CreateCategory(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{
		Message: "Category created successfully",
		ID:      category.ID,
		Name:    category.Name,
	})
}

// Delete handles the DELETE /api/categories/:id endpoint
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: errs.ErrCategoryNotFound.Error(),
		})
		return
	}

	if err := h.ledgerService.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Category deleted successfully",
	})
}
