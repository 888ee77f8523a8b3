package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
)

// AccountServicer exposes the balance ledger.
type AccountServicer interface {
	GetCurrentBalance(ctx context.Context) (decimal.Decimal, error)
	GetAccountState(ctx context.Context) (*models.AccountState, error)
}

// TransactionDraft carries the caller-supplied fields of a new transaction.
type TransactionDraft struct {
	Type        models.TransactionType
	Amount      decimal.Decimal
	CategoryID  string
	Description string
	PaymentMode models.PaymentMode
	Date        time.Time

	autopayID string
}

// TransactionUpdateFields holds the optional fields of a transaction edit.
// Nil fields keep their current value.
type TransactionUpdateFields struct {
	Type        *models.TransactionType
	Amount      *decimal.Decimal
	CategoryID  *string
	Description *string
	PaymentMode *models.PaymentMode
	Date        *time.Time
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate         *time.Time
	ToDate           *time.Time
	Type             *models.TransactionType
	CategoryID       *string
	AutopayGenerated *bool
}

// ValidationResult reports whether a draft transaction would be accepted.
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	SaveTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ValidateTransaction(ctx context.Context, draft TransactionDraft) (*ValidationResult, error)
}

// BudgetDraft carries the caller-supplied fields of a new budget.
type BudgetDraft struct {
	CategoryID string
	Name       string
	Amount     decimal.Decimal
	Period     models.BudgetPeriod
	StartDate  time.Time
	AutoReset  bool
}

// BudgetUpdateFields holds the optional fields of a budget edit.
type BudgetUpdateFields struct {
	Name      *string
	Amount    *decimal.Decimal
	Period    *models.BudgetPeriod
	AutoReset *bool
	IsActive  *bool
}

// BudgetRunResult counts what one period pass changed.
type BudgetRunResult struct {
	Reset   int `json:"reset"`
	Expired int `json:"expired"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SaveBudget(ctx context.Context, draft BudgetDraft) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id string, fields BudgetUpdateFields) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	ResetBudget(ctx context.Context, id string) (*models.Budget, error)
	GetBudgetByID(ctx context.Context, id string) (*models.Budget, error)
	FetchBudgets(ctx context.Context, isActive *bool) ([]models.Budget, error)
	FetchBudgetSummary(ctx context.Context) (*models.BudgetSummary, error)
	RecomputeSummary(ctx context.Context) (*models.BudgetSummary, error)
	ProcessExpiredBudgets(ctx context.Context) (*BudgetRunResult, error)
}

// AutopayDraft carries the caller-supplied fields of a new autopay definition.
type AutopayDraft struct {
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
	CategoryID  string
	PaymentMode models.PaymentMode
	Frequency   models.Frequency
	StartDate   time.Time
	EndDate     *time.Time
	MaxCount    *int
}

// AutopayRunResult counts what one autopay pass did.
type AutopayRunResult struct {
	Processed      int      `json:"processed"`
	Executed       int      `json:"executed"`
	Deactivated    int      `json:"deactivated"`
	Failed         int      `json:"failed"`
	TransactionIDs []string `json:"transaction_ids"`
}

// AutopayServicer defines the contract for recurring transactions.
type AutopayServicer interface {
	SaveAutopayTransaction(ctx context.Context, draft AutopayDraft) (*models.AutopayDefinition, error)
	DisableAutopay(ctx context.Context, id string) (*models.AutopayDefinition, error)
	GetAutopayByID(ctx context.Context, id string) (*models.AutopayDefinition, error)
	GetAutopayTransactions(ctx context.Context) ([]models.AutopayDefinition, error)
	ProcessAutopays(ctx context.Context) (*AutopayRunResult, error)
}

// TaskResult is the outcome of one scheduled tick.
type TaskResult struct {
	Autopays AutopayRunResult `json:"autopays"`
	Budgets  BudgetRunResult  `json:"budgets"`
	RanAt    time.Time        `json:"ran_at"`
}

// TaskServicer runs the time-driven passes.
type TaskServicer interface {
	ProcessScheduledTasks(ctx context.Context) (*TaskResult, error)
}

// NotificationServicer defines the contract for the notification history.
type NotificationServicer interface {
	ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int, error)
	ClearNotifications(ctx context.Context) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	ListCategories(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(ctx context.Context, name string, target decimal.Decimal, deadline *time.Time) (*models.Goal, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
	ContributeToGoal(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// LockServicer guards the app behind an optional passcode.
type LockServicer interface {
	Enabled() bool
	Unlock(passcode string) error
}
