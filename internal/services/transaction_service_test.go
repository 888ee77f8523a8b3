package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/events"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/testutil"
)

func TestSaveTransaction(t *testing.T) {
	t.Run("income_increases_balance", func(t *testing.T) {
		env := newTestEnv(t)

		tx := env.income(t, "1000")

		if tx.ID == "" {
			t.Fatal("expected transaction ID to be set")
		}
		testutil.AssertDecimal(t, "balance", env.balance(t), "1000")
		state := testutil.GetAccountState(t, env.records)
		testutil.AssertDecimal(t, "monthly income", state.MonthlyIncome, "1000")
		if env.events.Count(events.TransactionAdded) != 1 || env.events.Count(events.BalanceChanged) != 1 {
			t.Errorf("expected transaction.added and balance.changed, got %v", env.events.Types())
		}
	})

	t.Run("insufficient_balance_leaves_state_untouched", func(t *testing.T) {
		env := newTestEnv(t)
		cat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		_, err := env.transactions.SaveTransaction(env.ctx, TransactionDraft{
			Type:       models.TransactionTypeExpense,
			Amount:     dec("500"),
			CategoryID: cat.ID,
		})
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		testutil.AssertDecimal(t, "balance", env.balance(t), "0")
		txs, _ := env.records.Transactions(env.ctx)
		if len(txs) != 0 {
			t.Errorf("expected no stored transactions, got %d", len(txs))
		}
		if env.events.Count(events.BalanceChanged) != 0 {
			t.Error("expected no balance.changed event")
		}
	})

	t.Run("defaults_date_to_now", func(t *testing.T) {
		env := newTestEnv(t)

		tx, err := env.transactions.SaveTransaction(env.ctx, TransactionDraft{
			Type:   models.TransactionTypeIncome,
			Amount: dec("10"),
		})
		testutil.AssertNoError(t, err)
		if !tx.Date.Equal(testNow) {
			t.Errorf("expected date %v, got %v", testNow, tx.Date)
		}
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(t)
		testutil.SeedBalance(t, env.records, dec("1000"))
		expenseCat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		tests := []struct {
			name  string
			draft TransactionDraft
			code  string
		}{
			{"zero_amount", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("0")}, "INVALID_INPUT"},
			{"negative_amount", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("-5")}, "INVALID_INPUT"},
			{"too_precise", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("1.005")}, "INVALID_INPUT"},
			{"unknown_type", TransactionDraft{Type: "transfer", Amount: dec("5")}, "INVALID_TRANSACTION_TYPE"},
			{"unknown_category", TransactionDraft{Type: models.TransactionTypeExpense, Amount: dec("5"), CategoryID: "missing"}, "INVALID_INPUT"},
			{"category_type_mismatch", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("5"), CategoryID: expenseCat.ID}, "INVALID_INPUT"},
			{"far_future", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("5"), Date: testNow.Add(48 * time.Hour)}, "INVALID_INPUT"},
			{"too_old", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("5"), Date: testNow.AddDate(-6, 0, 0)}, "INVALID_INPUT"},
			{"bad_payment_mode", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("5"), PaymentMode: "cheque"}, "INVALID_INPUT"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.transactions.SaveTransaction(env.ctx, tt.draft)
				testutil.AssertAppError(t, err, tt.code)
			})
		}

		testutil.AssertDecimal(t, "balance", env.balance(t), "1000")
	})

	t.Run("callers_cannot_mark_autopay_generated", func(t *testing.T) {
		env := newTestEnv(t)

		tx := env.income(t, "10")
		if tx.IsAutopayGenerated || tx.AutopayID != "" {
			t.Error("expected a user transaction")
		}
	})
}

func TestBudgetScenarios(t *testing.T) {
	t.Run("expense_within_budget_does_not_notify", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		env.income(t, "1000")
		b := env.budget(t, food.ID, "1000", models.BudgetPeriodMonthly, false)
		env.expense(t, food.ID, "300")

		testutil.AssertDecimal(t, "balance", env.balance(t), "700")
		got := testutil.GetTestBudget(t, env.records, b.ID)
		testutil.AssertDecimal(t, "spent", got.Spent, "300")

		summary, err := env.budgets.FetchBudgetSummary(env.ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "summary spent", summary.Spent, "300")
		testutil.AssertDecimal(t, "summary total", summary.Total, "1000")

		if n := len(env.notificationList(t)); n != 0 {
			t.Errorf("expected no notifications at 30%%, got %d", n)
		}
	})

	t.Run("crossing_75_percent_raises_info", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		env.income(t, "1000")
		env.budget(t, food.ID, "1000", models.BudgetPeriodMonthly, false)
		env.expense(t, food.ID, "760")

		list := env.notificationList(t)
		if len(list) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(list))
		}
		if list[0].Severity != models.SeverityInfo {
			t.Errorf("expected info severity, got %q", list[0].Severity)
		}
		if env.events.Count(events.NotificationAdded) != 1 {
			t.Errorf("expected one notification.added event, got %d", env.events.Count(events.NotificationAdded))
		}
	})

	t.Run("delete_restores_balance_and_spent", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		env.income(t, "1000")
		b := env.budget(t, food.ID, "1000", models.BudgetPeriodMonthly, false)
		tx := env.expense(t, food.ID, "300")

		testutil.AssertNoError(t, env.transactions.DeleteTransaction(env.ctx, tx.ID))

		testutil.AssertDecimal(t, "balance", env.balance(t), "1000")
		got := testutil.GetTestBudget(t, env.records, b.ID)
		testutil.AssertDecimal(t, "spent", got.Spent, "0")
		if env.events.Count(events.TransactionDeleted) != 1 {
			t.Error("expected transaction.deleted event")
		}
	})

	t.Run("sitting_in_a_band_renotifies", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		env.income(t, "1000")
		env.budget(t, food.ID, "100", models.BudgetPeriodMonthly, false)
		env.expense(t, food.ID, "80")
		env.income(t, "5")

		if n := countSeverity(env.notificationList(t), models.SeverityInfo); n != 2 {
			t.Errorf("expected the info band to be raised twice, got %d", n)
		}
	})

	t.Run("dedupe_raises_each_band_once", func(t *testing.T) {
		env := newTestEnv(t, func(o *Options) { o.DedupeBudgetAlerts = true })
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		env.income(t, "1000")
		env.budget(t, food.ID, "100", models.BudgetPeriodMonthly, false)
		env.expense(t, food.ID, "80")
		env.income(t, "5")
		env.expense(t, food.ID, "15")
		env.expense(t, food.ID, "1")

		list := env.notificationList(t)
		if n := countSeverity(list, models.SeverityInfo); n != 1 {
			t.Errorf("expected 1 info notification, got %d", n)
		}
		if n := countSeverity(list, models.SeverityAlert); n != 1 {
			t.Errorf("expected 1 alert notification, got %d", n)
		}
	})

	t.Run("expense_outside_window_is_not_counted", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)

		env.income(t, "1000")
		b := env.budget(t, food.ID, "1000", models.BudgetPeriodMonthly, false)

		_, err := env.transactions.SaveTransaction(env.ctx, TransactionDraft{
			Type:       models.TransactionTypeExpense,
			Amount:     dec("50"),
			CategoryID: food.ID,
			Date:       testNow.AddDate(0, 0, -20),
		})
		testutil.AssertNoError(t, err)

		got := testutil.GetTestBudget(t, env.records, b.ID)
		testutil.AssertDecimal(t, "spent", got.Spent, "0")
		testutil.AssertDecimal(t, "balance", env.balance(t), "950")
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("amount_change_moves_balance_and_budget", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
		env.income(t, "1000")
		b := env.budget(t, food.ID, "1000", models.BudgetPeriodMonthly, false)
		tx := env.expense(t, food.ID, "300")

		amount := dec("450")
		updated, err := env.transactions.UpdateTransaction(env.ctx, tx.ID, TransactionUpdateFields{Amount: &amount})
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, "amount", updated.Amount, "450")
		testutil.AssertDecimal(t, "balance", env.balance(t), "550")
		got := testutil.GetTestBudget(t, env.records, b.ID)
		testutil.AssertDecimal(t, "spent", got.Spent, "450")
		if env.events.Count(events.TransactionUpdated) != 1 {
			t.Error("expected transaction.updated event")
		}
	})

	t.Run("move_to_another_category", func(t *testing.T) {
		env := newTestEnv(t)
		food := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
		fuel := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
		env.income(t, "1000")
		foodBudget := env.budget(t, food.ID, "500", models.BudgetPeriodMonthly, false)
		fuelBudget := env.budget(t, fuel.ID, "500", models.BudgetPeriodMonthly, false)
		tx := env.expense(t, food.ID, "120")

		_, err := env.transactions.UpdateTransaction(env.ctx, tx.ID, TransactionUpdateFields{CategoryID: &fuel.ID})
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, "food spent", testutil.GetTestBudget(t, env.records, foodBudget.ID).Spent, "0")
		testutil.AssertDecimal(t, "fuel spent", testutil.GetTestBudget(t, env.records, fuelBudget.ID).Spent, "120")
		testutil.AssertDecimal(t, "balance", env.balance(t), "880")
	})

	t.Run("aged_transaction_stays_editable", func(t *testing.T) {
		env := newTestEnv(t)
		tx, err := env.transactions.SaveTransaction(env.ctx, TransactionDraft{
			Type:   models.TransactionTypeIncome,
			Amount: dec("80"),
			Date:   testNow.AddDate(-5, 0, 1),
		})
		testutil.AssertNoError(t, err)

		env.clock.Advance(48 * time.Hour)

		description := "Old refund"
		updated, err := env.transactions.UpdateTransaction(env.ctx, tx.ID, TransactionUpdateFields{Description: &description})
		testutil.AssertNoError(t, err)
		if updated.Description != description || !updated.Date.Equal(tx.Date) {
			t.Errorf("expected description change with date kept, got %q at %v", updated.Description, updated.Date)
		}

		amount := dec("0")
		_, err = env.transactions.UpdateTransaction(env.ctx, tx.ID, TransactionUpdateFields{Amount: &amount})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		moved := testNow.AddDate(-6, 0, 0)
		_, err = env.transactions.UpdateTransaction(env.ctx, tx.ID, TransactionUpdateFields{Date: &moved})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("expense_growing_past_balance_is_rejected", func(t *testing.T) {
		env := newTestEnv(t)
		cat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
		env.income(t, "100")
		tx := env.expense(t, cat.ID, "60")

		amount := dec("101")
		_, err := env.transactions.UpdateTransaction(env.ctx, tx.ID, TransactionUpdateFields{Amount: &amount})
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		testutil.AssertDecimal(t, "balance", env.balance(t), "40")
		stored, err := env.transactions.GetTransactionByID(env.ctx, tx.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "stored amount", stored.Amount, "60")
	})

	t.Run("not_found", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.transactions.UpdateTransaction(env.ctx, "missing", TransactionUpdateFields{})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("spent_income_cannot_be_deleted", func(t *testing.T) {
		env := newTestEnv(t)
		cat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
		salary := env.income(t, "100")
		env.expense(t, cat.ID, "80")

		err := env.transactions.DeleteTransaction(env.ctx, salary.ID)
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
		testutil.AssertDecimal(t, "balance", env.balance(t), "20")
	})

	t.Run("not_found", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.transactions.DeleteTransaction(env.ctx, "missing")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestListTransactions(t *testing.T) {
	env := newTestEnv(t)
	cat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
	env.income(t, "1000")
	for i := 0; i < 5; i++ {
		env.clock.Advance(time.Hour)
		env.expense(t, cat.ID, "10")
	}

	t.Run("newest_first_with_pagination", func(t *testing.T) {
		res, err := env.transactions.ListTransactions(env.ctx, pagination.PageRequest{Page: 1, PageSize: 4}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if res.TotalItems != 6 || res.TotalPages != 2 || len(res.Data) != 4 {
			t.Fatalf("unexpected page: total=%d pages=%d len=%d", res.TotalItems, res.TotalPages, len(res.Data))
		}
		for i := 1; i < len(res.Data); i++ {
			if res.Data[i].Date.After(res.Data[i-1].Date) {
				t.Errorf("transactions not sorted newest first at %d", i)
			}
		}
	})

	t.Run("filter_by_type", func(t *testing.T) {
		typ := models.TransactionTypeIncome
		res, err := env.transactions.ListTransactions(env.ctx, pagination.PageRequest{}, TransactionFilter{Type: &typ})
		testutil.AssertNoError(t, err)
		if res.TotalItems != 1 {
			t.Errorf("expected 1 income, got %d", res.TotalItems)
		}
	})

	t.Run("filter_by_date_range", func(t *testing.T) {
		from := testNow.Add(2 * time.Hour)
		to := testNow.Add(4 * time.Hour)
		res, err := env.transactions.ListTransactions(env.ctx, pagination.PageRequest{}, TransactionFilter{FromDate: &from, ToDate: &to})
		testutil.AssertNoError(t, err)
		if res.TotalItems != 3 {
			t.Errorf("expected 3 transactions in range, got %d", res.TotalItems)
		}
	})
}

func TestValidateTransaction(t *testing.T) {
	env := newTestEnv(t)
	cat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
	env.income(t, "100")

	tests := []struct {
		name  string
		draft TransactionDraft
		valid bool
	}{
		{"affordable_expense", TransactionDraft{Type: models.TransactionTypeExpense, Amount: dec("100"), CategoryID: cat.ID}, true},
		{"unaffordable_expense", TransactionDraft{Type: models.TransactionTypeExpense, Amount: dec("100.01"), CategoryID: cat.ID}, false},
		{"zero_amount", TransactionDraft{Type: models.TransactionTypeIncome, Amount: dec("0")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := env.transactions.ValidateTransaction(env.ctx, tt.draft)
			testutil.AssertNoError(t, err)
			if res.IsValid != tt.valid {
				t.Errorf("expected valid=%v, got %v (%s)", tt.valid, res.IsValid, res.Message)
			}
			if !tt.valid && res.Message == "" {
				t.Error("expected a message for an invalid draft")
			}
		})
	}

	testutil.AssertDecimal(t, "balance", env.balance(t), "100")
}

func TestSaveThenDeleteRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	cat := testutil.CreateTestCategory(t, env.records, models.CategoryTypeExpense)
	initial := testutil.SeedBalance(t, env.records, dec("500"))

	rng := rand.New(rand.NewSource(7))
	var saved []string
	for i := 0; i < 30; i++ {
		amount := decimal.NewFromInt(int64(1 + rng.Intn(9)))
		draft := TransactionDraft{Type: models.TransactionTypeIncome, Amount: amount}
		if rng.Intn(2) == 0 {
			draft = TransactionDraft{Type: models.TransactionTypeExpense, Amount: amount, CategoryID: cat.ID}
		}
		tx, err := env.transactions.SaveTransaction(env.ctx, draft)
		if err != nil {
			testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
			continue
		}
		saved = append(saved, tx.ID)
		if env.balance(t).IsNegative() {
			t.Fatalf("balance went negative after %d saves", i+1)
		}
	}

	for i := len(saved) - 1; i >= 0; i-- {
		testutil.AssertNoError(t, env.transactions.DeleteTransaction(env.ctx, saved[i]))
	}

	state := testutil.GetAccountState(t, env.records)
	testutil.AssertDecimal(t, "balance", state.Balance, initial.Balance.String())
	testutil.AssertDecimal(t, "monthly income", state.MonthlyIncome, initial.MonthlyIncome.String())
	testutil.AssertDecimal(t, "monthly expenses", state.MonthlyExpenses, "0")
}
