package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pocketledger/internal/models"
	"pocketledger/internal/repository"
	"pocketledger/internal/testutil"
)

// testNow is a mid-month instant so monthly windows starting at the first
// comfortably contain it.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	ctx     context.Context
	records *repository.Records
	clock   *testutil.Clock
	events  *testutil.EventRecorder
	core    *Core

	accounts      AccountServicer
	transactions  TransactionServicer
	budgets       BudgetServicer
	autopays      AutopayServicer
	notifications NotificationServicer
	categories    CategoryServicer
	goals         GoalServicer
	tasks         TaskServicer
}

func newTestEnv(t *testing.T, configure ...func(*Options)) *testEnv {
	t.Helper()

	records := testutil.SetupTestRecords(t)
	clock := testutil.NewClock(testNow)
	recorder := &testutil.EventRecorder{}

	opts := Options{Clock: clock.Now, Logger: zap.NewNop().Sugar()}
	for _, fn := range configure {
		fn(&opts)
	}
	core := NewCore(records, recorder, opts)

	return &testEnv{
		ctx:           context.Background(),
		records:       records,
		clock:         clock,
		events:        recorder,
		core:          core,
		accounts:      NewAccountService(core),
		transactions:  NewTransactionService(core),
		budgets:       NewBudgetService(core),
		autopays:      NewAutopayService(core),
		notifications: NewNotificationService(core),
		categories:    NewCategoryService(core),
		goals:         NewGoalService(core),
		tasks:         NewTaskService(core),
	}
}

func dec(s string) decimal.Decimal {
	return testutil.Dec(s)
}

func (e *testEnv) income(t *testing.T, amount string) *models.Transaction {
	t.Helper()
	tx, err := e.transactions.SaveTransaction(e.ctx, TransactionDraft{
		Type:   models.TransactionTypeIncome,
		Amount: dec(amount),
		Date:   e.clock.Now(),
	})
	testutil.AssertNoError(t, err)
	return tx
}

func (e *testEnv) expense(t *testing.T, categoryID, amount string) *models.Transaction {
	t.Helper()
	tx, err := e.transactions.SaveTransaction(e.ctx, TransactionDraft{
		Type:       models.TransactionTypeExpense,
		Amount:     dec(amount),
		CategoryID: categoryID,
		Date:       e.clock.Now(),
	})
	testutil.AssertNoError(t, err)
	return tx
}

func (e *testEnv) budget(t *testing.T, categoryID, amount string, period models.BudgetPeriod, autoReset bool) *models.Budget {
	t.Helper()
	b, err := e.budgets.SaveBudget(e.ctx, BudgetDraft{
		CategoryID: categoryID,
		Amount:     dec(amount),
		Period:     period,
		AutoReset:  autoReset,
	})
	testutil.AssertNoError(t, err)
	return b
}

func (e *testEnv) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	b, err := e.accounts.GetCurrentBalance(e.ctx)
	testutil.AssertNoError(t, err)
	return b
}

func (e *testEnv) notificationList(t *testing.T) []models.Notification {
	t.Helper()
	list, err := e.notifications.ListNotifications(e.ctx, false)
	testutil.AssertNoError(t, err)
	return list
}

func countSeverity(list []models.Notification, severity models.Severity) int {
	n := 0
	for _, item := range list {
		if item.Severity == severity {
			n++
		}
	}
	return n
}
