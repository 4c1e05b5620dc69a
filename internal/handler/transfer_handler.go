package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/middleware"
)

// Transferrer defines the transfer operation used by TransferHandler.
type Transferrer interface {
	Transfer(sourceID, destinationID string, amount float64, credential string) (*bank.Receipt, error)
}

// TransferHandler handles transfer HTTP requests.
type TransferHandler struct {
	transfers Transferrer
}

type TransferRequest struct {
	SourceAccountID      string  `json:"sourceAccountId" validate:"required"`
	DestinationAccountID string  `json:"destinationAccountId" validate:"required"`
	Amount               float64 `json:"amount" validate:"required,gt=0"`
	Password             string  `json:"password" validate:"required"`
}

func NewTransferHandler(transfers Transferrer) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	if !requireOwner(c, req.SourceAccountID) {
		return
	}

	receipt, err := h.transfers.Transfer(req.SourceAccountID, req.DestinationAccountID, req.Amount, req.Password)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
