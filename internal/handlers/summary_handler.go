package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finbuddy/internal/dashboard"
	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/services"
)

// SummaryHandler serves the dashboard page and the balance summary.
type SummaryHandler struct {
	userService        services.UserServicer
	transactionService services.TransactionServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(userService services.UserServicer, transactionService services.TransactionServicer) *SummaryHandler {
	return &SummaryHandler{userService: userService, transactionService: transactionService}
}

// GetSummary returns balance totals over the caller's full unfiltered
// transaction list. Identities with no user record get an empty summary,
// mirroring the empty list on GET /transactions.
// @Summary     Get balance summary
// @Description Get balance, income, and expense totals over all transactions
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboard.Summary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	externalID, err := getExternalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := h.userService.FindUser(externalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusOK, dashboard.Summarize(nil))
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

	c.JSON(http.StatusOK, dashboard.Summarize(transactions))
}

// Index serves the embedded dashboard page.
func (h *SummaryHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dashboard.Index())
}
