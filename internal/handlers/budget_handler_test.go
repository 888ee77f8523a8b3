package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

const testBudgetID = "0190a5a4-7c7e-7d3a-9f57-6d2b1c1f0c33"

// --- mock budget service ---

type mockBudgetService struct {
	saveBudgetFn         func(ctx context.Context, draft services.BudgetDraft) (*models.Budget, error)
	updateBudgetFn       func(ctx context.Context, id string, fields services.BudgetUpdateFields) (*models.Budget, error)
	deleteBudgetFn       func(ctx context.Context, id string) error
	resetBudgetFn        func(ctx context.Context, id string) (*models.Budget, error)
	getBudgetByIDFn      func(ctx context.Context, id string) (*models.Budget, error)
	fetchBudgetsFn       func(ctx context.Context, isActive *bool) ([]models.Budget, error)
	fetchBudgetSummaryFn func(ctx context.Context) (*models.BudgetSummary, error)
	recomputeSummaryFn   func(ctx context.Context) (*models.BudgetSummary, error)
}

func (m *mockBudgetService) SaveBudget(ctx context.Context, draft services.BudgetDraft) (*models.Budget, error) {
	if m.saveBudgetFn != nil {
		return m.saveBudgetFn(ctx, draft)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, id string, fields services.BudgetUpdateFields) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(ctx, id, fields)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, id string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(ctx, id)
	}
	return nil
}

func (m *mockBudgetService) ResetBudget(ctx context.Context, id string) (*models.Budget, error) {
	if m.resetBudgetFn != nil {
		return m.resetBudgetFn(ctx, id)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByID(ctx context.Context, id string) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(ctx, id)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) FetchBudgets(ctx context.Context, isActive *bool) ([]models.Budget, error) {
	if m.fetchBudgetsFn != nil {
		return m.fetchBudgetsFn(ctx, isActive)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) FetchBudgetSummary(ctx context.Context) (*models.BudgetSummary, error) {
	if m.fetchBudgetSummaryFn != nil {
		return m.fetchBudgetSummaryFn(ctx)
	}
	return &models.BudgetSummary{}, nil
}

func (m *mockBudgetService) RecomputeSummary(ctx context.Context) (*models.BudgetSummary, error) {
	if m.recomputeSummaryFn != nil {
		return m.recomputeSummaryFn(ctx)
	}
	return &models.BudgetSummary{}, nil
}

func (m *mockBudgetService) ProcessExpiredBudgets(context.Context) (*services.BudgetRunResult, error) {
	return &services.BudgetRunResult{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.POST("/budgets", handler.CreateBudget)
	r.GET("/budgets", handler.GetBudgets)
	r.GET("/budgets/summary", handler.GetBudgetSummary)
	r.POST("/budgets/summary/recompute", handler.RecomputeBudgetSummary)
	r.GET("/budgets/:id", handler.GetBudget)
	r.PUT("/budgets/:id", handler.UpdateBudget)
	r.DELETE("/budgets/:id", handler.DeleteBudget)
	r.POST("/budgets/:id/reset", handler.ResetBudget)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.BudgetDraft
		svc := &mockBudgetService{
			saveBudgetFn: func(_ context.Context, draft services.BudgetDraft) (*models.Budget, error) {
				got = draft
				return &models.Budget{
					Base:       models.Base{ID: testBudgetID},
					CategoryID: draft.CategoryID,
					Name:       draft.Name,
					Amount:     draft.Amount,
					Period:     draft.Period,
					IsActive:   true,
					AutoReset:  draft.AutoReset,
				}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets",
			`{"category_id":"`+testCategoryID+`","name":"Groceries","amount":"500","period":"quarterly","start_date":"2025-01-01","auto_reset":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.StartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) || !got.AutoReset {
			t.Errorf("unexpected draft %+v", got)
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["name"] != "Groceries" || budget["amount"] != "500" || budget["period"] != "quarterly" {
			t.Errorf("unexpected budget %v", budget)
		}
	})

	t.Run("leaves start date unset when omitted", func(t *testing.T) {
		var got services.BudgetDraft
		svc := &mockBudgetService{
			saveBudgetFn: func(_ context.Context, draft services.BudgetDraft) (*models.Budget, error) {
				got = draft
				return &models.Budget{}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"food","amount":"50","period":"weekly"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.StartDate.IsZero() {
			t.Errorf("expected zero start date, got %v", got.StartDate)
		}
	})

	t.Run("returns 400 on invalid body", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		for _, body := range []string{
			`{"amount":"50","period":"monthly"}`,
			`{"category_id":"food","amount":"50"}`,
			`{"category_id":"food","amount":"50","period":"hourly"}`,
			`{"category_id":"food","amount":"0","period":"monthly"}`,
		} {
			rec := doRequest(r, "POST", "/budgets", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", body, rec.Code)
				continue
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		}
	})

	t.Run("returns 409 on duplicate", func(t *testing.T) {
		svc := &mockBudgetService{
			saveBudgetFn: func(context.Context, services.BudgetDraft) (*models.Budget, error) {
				return nil, apperrors.ErrDuplicateBudget
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"food","amount":"50","period":"monthly"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_BUDGET")
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("passes active filter", func(t *testing.T) {
		var got *bool
		svc := &mockBudgetService{
			fetchBudgetsFn: func(_ context.Context, isActive *bool) ([]models.Budget, error) {
				got = isActive
				return []models.Budget{{Base: models.Base{ID: testBudgetID}, Status: models.BudgetStatusExpiringSoon}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "GET", "/budgets?is_active=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || !*got {
			t.Errorf("expected is_active=true, got %v", got)
		}
		budgets := parseJSON(t, rec)["budgets"].([]interface{})
		if budgets[0].(map[string]interface{})["status"] != "expiring_soon" {
			t.Errorf("unexpected budgets %v", budgets)
		}
	})

	t.Run("returns 400 on bad filter", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "GET", "/budgets?is_active=yes", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	var got services.BudgetUpdateFields
	svc := &mockBudgetService{
		updateBudgetFn: func(_ context.Context, _ string, fields services.BudgetUpdateFields) (*models.Budget, error) {
			got = fields
			return &models.Budget{}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"amount":"750","is_active":false}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Amount == nil || !got.Amount.Equal(decimal.NewFromInt(750)) ||
		got.IsActive == nil || *got.IsActive || got.Name != nil || got.Period != nil {
		t.Errorf("unexpected fields %+v", got)
	}
}

func TestBudgetHandler_DeleteAndReset(t *testing.T) {
	t.Run("delete returns 404 when missing", func(t *testing.T) {
		svc := &mockBudgetService{
			deleteBudgetFn: func(context.Context, string) error { return apperrors.ErrBudgetNotFound },
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "DELETE", "/budgets/"+testBudgetID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("reset returns the new period", func(t *testing.T) {
		svc := &mockBudgetService{
			resetBudgetFn: func(_ context.Context, id string) (*models.Budget, error) {
				return &models.Budget{Base: models.Base{ID: id}, Spent: decimal.Zero, ResetCount: 1}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets/"+testBudgetID+"/reset", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["reset_count"].(float64) != 1 {
			t.Errorf("unexpected budget %v", budget)
		}
	})
}

func TestBudgetHandler_Summary(t *testing.T) {
	summary := &models.BudgetSummary{
		Total:      decimal.NewFromInt(100),
		Spent:      decimal.NewFromInt(80),
		Remaining:  decimal.NewFromInt(20),
		Percentage: 80,
	}
	recomputed := false
	svc := &mockBudgetService{
		fetchBudgetSummaryFn: func(context.Context) (*models.BudgetSummary, error) { return summary, nil },
		recomputeSummaryFn: func(context.Context) (*models.BudgetSummary, error) {
			recomputed = true
			return summary, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "GET", "/budgets/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := parseJSON(t, rec)["summary"].(map[string]interface{})
	if got["percentage"].(float64) != 80 || got["remaining"] != "20" {
		t.Errorf("unexpected summary %v", got)
	}

	rec = doRequest(r, "POST", "/budgets/summary/recompute", "")
	if rec.Code != http.StatusOK || !recomputed {
		t.Fatalf("expected recompute to run, got %d", rec.Code)
	}
}
