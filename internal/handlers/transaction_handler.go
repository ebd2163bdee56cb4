package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/models"
	"finbuddy/internal/services"
)

// TransactionHandler handles transaction CRUD requests.
type TransactionHandler struct {
	userService        services.UserServicer
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(userService services.UserServicer, transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{userService: userService, transactionService: transactionService}
}

// TransactionRequest represents the request payload for creating or updating
// a transaction. Updates replace every field; there is no partial patch.
type TransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	Category    string                 `json:"category" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Description string                 `json:"description" binding:"max=500"`
	Date        string                 `json:"date"`
}

// ListTransactions returns all of the caller's transactions, newest first.
// An identity with no user record yet has no data and gets an empty array
// rather than an error; only truly unauthenticated requests see 401.
// @Summary     List transactions
// @Description Get all transactions for the authenticated user, newest date first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	externalID, err := getExternalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := h.userService.FindUser(externalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusOK, []models.Transaction{})
			return
		}
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction records a new transaction, minting the caller's user
// record on first sight.
// @Summary     Create a transaction
// @Description Create a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	externalID, err := getExternalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	userID, err := h.userService.EnsureUser(externalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		userID, req.Amount, req.Category, req.Type, req.Description, parseDate(req.Date))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// UpdateTransaction replaces a transaction's fields wholesale. A caller with
// no backing user record gets 403; a transaction that does not exist or
// belongs to someone else gets 404 — the two are indistinguishable.
// @Summary     Update transaction
// @Description Replace all fields of an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Transaction ID"
// @Param       request body TransactionRequest true "Replacement fields"
// @Success     200 {object} MessageResponse "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "No user record"
// @Failure     404 {object} ErrorResponse "Not found or not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	externalID, err := getExternalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// Mutations never create a user: an identity with no footprint cannot
	// own the target row, so a missing record is a plain 403.
	userID, err := h.userService.FindUser(externalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	affected, err := h.transactionService.UpdateTransaction(
		userID, transactionID, req.Amount, req.Category, req.Type, req.Description, parseDate(req.Date))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !affected {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated successfully"})
}

// DeleteTransaction removes a transaction with the same 403/404 semantics as
// UpdateTransaction. Deleting an already-deleted ID is a clean 404.
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "No user record"
// @Failure     404 {object} ErrorResponse "Not found or not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	externalID, err := getExternalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := h.userService.FindUser(externalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	affected, err := h.transactionService.DeleteTransaction(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !affected {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the error envelope returned by all endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
