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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Create handles the POST /api/transactions endpoint
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request format: " + err.Error(),
		})
		return
	}

	transaction, err := h.ledgerService.CreateTransaction(
		c.Request.Context(), userID, req.Amount, req.Type, req.CategoryID, req.Description,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{
		Message: "Transaction created successfully",
		ID:      transaction.ID,
		Amount:  transaction.Amount(),
		Type:    string(transaction.Type),
	})
}

// Update handles the PUT /api/transactions/:id endpoint
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	transactionID, err := parseTransactionID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: errs.ErrTransactionNotFound.Error(),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request format: " + err.Error(),
		})
		return
	}

	transaction, err := h.ledgerService.UpdateTransaction(
		c.Request.Context(), userID, transactionID,
		ledgerUseCase.TransactionPatch{
			Amount:      req.Amount,
			Type:        req.Type,
			CategoryID:  req.CategoryID,
			Description: req.Description,
		},
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{
		Message: "Transaction updated successfully",
		ID:      transaction.ID,
		Amount:  transaction.Amount(),
		Type:    string(transaction.Type),
	})
}

// Delete handles the DELETE /api/transactions/:id endpoint
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	transactionID, err := parseTransactionID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: errs.ErrTransactionNotFound.Error(),
		})
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Transaction deleted successfully",
	})
}

func parseTransactionID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
