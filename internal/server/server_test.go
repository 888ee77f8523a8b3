package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/config"
	"pocketledger/internal/database"
	"pocketledger/internal/events"
	"pocketledger/internal/logger"
	"pocketledger/internal/services"
	"pocketledger/internal/validator"
)

const testPipelineKey = "tick-secret"

// testApp holds the full application stack for a flow test.
type testApp struct {
	Router *gin.Engine
}

type appOptions struct {
	driver       string
	sqlitePath   string
	passcodeHash string
	pipelineKey  string
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack over a fresh store.
func setupApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	if opts.driver == "" {
		opts.driver = config.StoreMemory
	}
	manager, err := database.NewManager(&database.Config{Driver: opts.driver, SQLitePath: opts.sqlitePath})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = manager.Close() })
	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate store: %v", err)
	}

	hub := events.NewHub()
	core := services.NewCore(manager.Records("test"), hub, services.Options{})
	svc := NewServices(core, hub, services.NewLockService(opts.passcodeHash, nil))

	return &testApp{Router: NewRouter(svc, Options{TokenTTL: time.Hour, PipelineAPIKey: opts.pipelineKey})}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustStatus fails the test unless rec carries want, and returns the parsed body.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) map[string]interface{} {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(result map[string]interface{}) string {
	errObj, _ := result["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

// categoryID looks up a seeded category by name.
func (app *testApp) categoryID(t *testing.T, name string) string {
	t.Helper()
	result := mustStatus(t, app.request("GET", "/api/v1/categories", "", nil), http.StatusOK)
	for _, raw := range result["categories"].([]interface{}) {
		cat := raw.(map[string]interface{})
		if cat["name"] == name {
			return cat["id"].(string)
		}
	}
	t.Fatalf("category %q not seeded", name)
	return ""
}

func (app *testApp) balance(t *testing.T) string {
	t.Helper()
	result := mustStatus(t, app.request("GET", "/api/v1/balance", "", nil), http.StatusOK)
	return result["account"].(map[string]interface{})["balance"].(string)
}

func TestLedgerFlow_BudgetAndBalance(t *testing.T) {
	app := setupApp(t, appOptions{})
	salary := app.categoryID(t, "Salary")
	food := app.categoryID(t, "Food & Dining")

	// Step 1: Receive income
	mustStatus(t, app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"income","amount":"1000","category_id":%q,"description":"March salary"}`, salary), nil),
		http.StatusCreated)

	// Step 2: Budget 100 for food
	result := mustStatus(t, app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Food","amount":"100","period":"monthly"}`, food), nil),
		http.StatusCreated)
	budgetID := result["budget"].(map[string]interface{})["id"].(string)

	// Step 3: Spend 95 on food
	result = mustStatus(t, app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"expense","amount":"95","category_id":%q,"payment_mode":"card"}`, food), nil),
		http.StatusCreated)
	expenseID := result["transaction"].(map[string]interface{})["id"].(string)

	if got := app.balance(t); got != "905" {
		t.Errorf("expected balance 905, got %s", got)
	}

	result = mustStatus(t, app.request("GET", "/api/v1/budgets/"+budgetID, "", nil), http.StatusOK)
	if spent := result["budget"].(map[string]interface{})["spent"]; spent != "95" {
		t.Errorf("expected budget spent 95, got %v", spent)
	}

	result = mustStatus(t, app.request("GET", "/api/v1/budgets/summary", "", nil), http.StatusOK)
	summary := result["summary"].(map[string]interface{})
	if summary["total"] != "100" || summary["spent"] != "95" || summary["remaining"] != "5" {
		t.Errorf("unexpected summary %v", summary)
	}

	// Step 4: The 95% band raised an alert
	result = mustStatus(t, app.request("GET", "/api/v1/notifications?unread=true", "", nil), http.StatusOK)
	list := result["notifications"].([]interface{})
	if len(list) == 0 {
		t.Fatal("expected a budget notification")
	}
	if severity := list[0].(map[string]interface{})["severity"]; severity != "alert" {
		t.Errorf("expected alert severity, got %v", severity)
	}

	// Step 5: Overspending is rejected without touching the balance
	result = mustStatus(t, app.request("POST", "/api/v1/transactions",
		`{"type":"expense","amount":"2000"}`, nil), http.StatusBadRequest)
	if code := errorCode(result); code != "INSUFFICIENT_BALANCE" {
		t.Errorf("expected INSUFFICIENT_BALANCE, got %s", code)
	}
	if got := app.balance(t); got != "905" {
		t.Errorf("expected balance 905 after rejected expense, got %s", got)
	}

	// Step 6: Deleting the expense restores balance and budget
	mustStatus(t, app.request("DELETE", "/api/v1/transactions/"+expenseID, "", nil), http.StatusOK)
	if got := app.balance(t); got != "1000" {
		t.Errorf("expected balance 1000 after delete, got %s", got)
	}
	result = mustStatus(t, app.request("GET", "/api/v1/budgets/"+budgetID, "", nil), http.StatusOK)
	if spent := result["budget"].(map[string]interface{})["spent"]; spent != "0" {
		t.Errorf("expected budget spent 0 after delete, got %v", spent)
	}
}

func TestLedgerFlow_AutopayThroughPipeline(t *testing.T) {
	app := setupApp(t, appOptions{pipelineKey: testPipelineKey})
	key := map[string]string{"X-API-Key": testPipelineKey}

	mustStatus(t, app.request("POST", "/api/v1/transactions", `{"type":"income","amount":"100"}`, nil), http.StatusCreated)

	result := mustStatus(t, app.request("POST", "/api/v1/autopays",
		`{"description":"Streaming","amount":"15","type":"expense","frequency":"monthly"}`, nil), http.StatusCreated)
	autopayID := result["autopay"].(map[string]interface{})["id"].(string)

	// The tick executes the due autopay
	result = mustStatus(t, app.request("POST", "/api/v1/pipeline/scheduled-tasks", "", key), http.StatusOK)
	autopays := result["autopays"].(map[string]interface{})
	if autopays["executed"] != float64(1) {
		t.Fatalf("expected 1 execution, got %v", autopays)
	}

	if got := app.balance(t); got != "85" {
		t.Errorf("expected balance 85, got %s", got)
	}

	result = mustStatus(t, app.request("GET", "/api/v1/transactions?autopay=true", "", nil), http.StatusOK)
	data := result["data"].([]interface{})
	if len(data) != 1 || data[0].(map[string]interface{})["autopay_id"] != autopayID {
		t.Errorf("expected one autopay transaction, got %v", data)
	}

	// A second tick in the same period has nothing due
	result = mustStatus(t, app.request("POST", "/api/v1/pipeline/scheduled-tasks", "", key), http.StatusOK)
	if executed := result["autopays"].(map[string]interface{})["executed"]; executed != float64(0) {
		t.Errorf("expected no execution on second tick, got %v", executed)
	}

	// Disabling keeps past transactions
	result = mustStatus(t, app.request("POST", "/api/v1/autopays/"+autopayID+"/disable", "", nil), http.StatusOK)
	if result["autopay"].(map[string]interface{})["is_active"] != false {
		t.Error("expected autopay to be inactive")
	}
	if got := app.balance(t); got != "85" {
		t.Errorf("expected balance 85 after disable, got %s", got)
	}
}

func TestPipelineAuth(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		app := setupApp(t, appOptions{})
		result := mustStatus(t, app.request("POST", "/api/v1/pipeline/scheduled-tasks", "",
			map[string]string{"X-API-Key": "anything"}), http.StatusServiceUnavailable)
		if code := errorCode(result); code != "PIPELINE_NOT_CONFIGURED" {
			t.Errorf("expected PIPELINE_NOT_CONFIGURED, got %s", code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		app := setupApp(t, appOptions{pipelineKey: testPipelineKey})
		result := mustStatus(t, app.request("POST", "/api/v1/pipeline/scheduled-tasks", "",
			map[string]string{"X-API-Key": "guess"}), http.StatusUnauthorized)
		if code := errorCode(result); code != "INVALID_API_KEY" {
			t.Errorf("expected INVALID_API_KEY, got %s", code)
		}
	})
}

func TestLockFlow(t *testing.T) {
	hash, err := services.HashPasscode("2468")
	if err != nil {
		t.Fatalf("failed to hash passcode: %v", err)
	}
	app := setupApp(t, appOptions{passcodeHash: hash})

	result := mustStatus(t, app.request("GET", "/api/v1/auth/status", "", nil), http.StatusOK)
	if result["lock_enabled"] != true {
		t.Fatal("expected lock to be enabled")
	}

	// Locked routes need a token
	mustStatus(t, app.request("GET", "/api/v1/balance", "", nil), http.StatusUnauthorized)

	result = mustStatus(t, app.request("POST", "/api/v1/auth/unlock", `{"passcode":"0000"}`, nil), http.StatusUnauthorized)
	if code := errorCode(result); code != "INVALID_PASSCODE" {
		t.Errorf("expected INVALID_PASSCODE, got %s", code)
	}

	result = mustStatus(t, app.request("POST", "/api/v1/auth/unlock", `{"passcode":"2468"}`, nil), http.StatusOK)
	token := result["token"].(string)

	result = mustStatus(t, app.request("GET", "/api/v1/balance", "",
		map[string]string{"Authorization": "Bearer " + token}), http.StatusOK)
	if result["account"].(map[string]interface{})["balance"] != "0" {
		t.Errorf("expected zero balance, got %v", result["account"])
	}
}

func TestLedgerFlow_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	first := setupApp(t, appOptions{driver: config.StoreSQLite, sqlitePath: path})
	mustStatus(t, first.request("POST", "/api/v1/transactions", `{"type":"income","amount":"42.50"}`, nil), http.StatusCreated)
	mustStatus(t, first.request("POST", "/api/v1/goals", `{"name":"Bike","target_amount":"400"}`, nil), http.StatusCreated)

	second := setupApp(t, appOptions{driver: config.StoreSQLite, sqlitePath: path})
	if got := second.balance(t); got != "42.5" {
		t.Errorf("expected balance 42.5 after restart, got %s", got)
	}
	result := mustStatus(t, second.request("GET", "/api/v1/goals", "", nil), http.StatusOK)
	if goals := result["goals"].([]interface{}); len(goals) != 1 {
		t.Errorf("expected 1 goal after restart, got %d", len(goals))
	}
}
