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

const testGoalID = "0190a5a4-7c7e-7d3a-9f57-6d2b1c1f0f66"

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn func(ctx context.Context, name string, target decimal.Decimal, deadline *time.Time) (*models.Goal, error)
	listGoalsFn  func(ctx context.Context) ([]models.Goal, error)
	contributeFn func(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error)
	deleteGoalFn func(ctx context.Context, id string) error
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func (m *mockGoalService) CreateGoal(ctx context.Context, name string, target decimal.Decimal, deadline *time.Time) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(ctx, name, target, deadline)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	if m.listGoalsFn != nil {
		return m.listGoalsFn(ctx)
	}
	return []models.Goal{}, nil
}

func (m *mockGoalService) ContributeToGoal(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error) {
	if m.contributeFn != nil {
		return m.contributeFn(ctx, id, amount)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) DeleteGoal(ctx context.Context, id string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(ctx, id)
	}
	return nil
}

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/goals", handler.CreateGoal)
	r.GET("/goals", handler.GetGoals)
	r.POST("/goals/:id/contribute", handler.ContributeToGoal)
	r.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotDeadline *time.Time
		svc := &mockGoalService{
			createGoalFn: func(_ context.Context, name string, target decimal.Decimal, deadline *time.Time) (*models.Goal, error) {
				gotDeadline = deadline
				return &models.Goal{Base: models.Base{ID: testGoalID}, Name: name, TargetAmount: target}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals", `{"name":"Bike","target_amount":"800","deadline":"2025-09-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDeadline == nil || !gotDeadline.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected deadline %v", gotDeadline)
		}
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["name"] != "Bike" || goal["target_amount"] != "800" {
			t.Errorf("unexpected goal %v", goal)
		}
	})

	t.Run("returns 400 on invalid body", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		for _, body := range []string{
			`{"target_amount":"800"}`,
			`{"name":"Bike","target_amount":"0"}`,
			`{"name":"Bike","target_amount":"800","deadline":"next year"}`,
		} {
			rec := doRequest(r, "POST", "/goals", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", body, rec.Code)
				continue
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		}
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	svc := &mockGoalService{
		listGoalsFn: func(context.Context) ([]models.Goal, error) {
			return []models.Goal{{Name: "Bike"}, {Name: "Trip"}}, nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(svc))

	rec := doRequest(r, "GET", "/goals", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if list := parseJSON(t, rec)["goals"].([]interface{}); len(list) != 2 {
		t.Errorf("expected 2 goals, got %d", len(list))
	}
}

func TestGoalHandler_ContributeToGoal(t *testing.T) {
	t.Run("returns 200 with updated goal", func(t *testing.T) {
		var gotAmount decimal.Decimal
		svc := &mockGoalService{
			contributeFn: func(_ context.Context, id string, amount decimal.Decimal) (*models.Goal, error) {
				gotAmount = amount
				return &models.Goal{
					Base:          models.Base{ID: id},
					TargetAmount:  decimal.NewFromInt(800),
					SavedAmount:   amount,
					LastMilestone: 25,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contribute", `{"amount":"200"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotAmount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("unexpected amount %s", gotAmount)
		}
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["last_milestone"] != float64(25) {
			t.Errorf("unexpected goal %v", goal)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockGoalService{
			contributeFn: func(context.Context, string, decimal.Decimal) (*models.Goal, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contribute", `{"amount":"5"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contribute", `{"amount":"-1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	var got string
	svc := &mockGoalService{
		deleteGoalFn: func(_ context.Context, id string) error {
			got = id
			return nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(svc))

	rec := doRequest(r, "DELETE", "/goals/"+testGoalID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != testGoalID {
		t.Errorf("expected id %s, got %s", testGoalID, got)
	}
}
