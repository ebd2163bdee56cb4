package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/models"
)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/", handler.Index)
	auth := r.Group("", injectExternalID("ext_test"))
	auth.GET("/summary", handler.GetSummary)
	return r
}

func TestSummaryHandler_GetSummary(t *testing.T) {
	t.Run("returns totals over the full list", func(t *testing.T) {
		txSvc := &mockTransactionService{
			listFn: func(ownerID uint) ([]models.Transaction, error) {
				return []models.Transaction{
					{UserID: ownerID, Amount: decimal.NewFromInt(100), Category: "Salary", Type: models.TransactionTypeIncome},
					{UserID: ownerID, Amount: decimal.NewFromInt(40), Category: "Food", Type: models.TransactionTypeExpense},
				}, nil
			},
		}
		handler := NewSummaryHandler(&mockUserService{}, txSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["balance"] != "60" {
			t.Errorf("expected balance 60, got %v", result["balance"])
		}
		if result["count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", result["count"])
		}
	})

	t.Run("returns an empty summary for an identity with no user record", func(t *testing.T) {
		userSvc := &mockUserService{
			findUserFn: func(string) (uint, error) { return 0, apperrors.ErrForbidden },
		}
		handler := NewSummaryHandler(userSvc, &mockTransactionService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["balance"] != "0" || result["count"].(float64) != 0 {
			t.Errorf("expected empty summary, got %v", result)
		}
	})
}

func TestSummaryHandler_Index(t *testing.T) {
	handler := NewSummaryHandler(&mockUserService{}, &mockTransactionService{})
	r := setupSummaryRouter(handler)

	rec := doRequest(r, "GET", "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML response, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Finance Buddy") {
		t.Error("expected the dashboard page body")
	}
}
