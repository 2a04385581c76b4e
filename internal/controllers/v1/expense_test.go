package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/analizador-gastos/backend/internal/controllers/v1"
	ag_uuid "github.com/analizador-gastos/backend/internal/uuid"
	"github.com/analizador-gastos/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	expense := suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(14500.50),
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Note:       "Supermercado",
		CategoryID: ag_uuid.UUID{UUID: category.ID},
	})

	assert.True(suite.T(), expense.Amount.Equal(decimal.NewFromFloat(14500.50)))
	assert.Equal(suite.T(), "Supermercado", expense.Note)
	assert.Equal(suite.T(), category.ID, expense.CategoryID.UUID)
}

func (suite *TestSuiteStandard) TestExpenseCreateLegacyCategoryName() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"amount":   "120",
		"category": "Comida",
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), category.ID, response.Data.CategoryID.UUID)
}

func (suite *TestSuiteStandard) TestExpenseCreateLegacyCategoryUnknown() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"amount":   "120",
		"category": "No Existe",
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseCreateWithoutCategory() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"amount": "120",
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesGetFiltered() {
	auth := suite.registerTestUser()
	food := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})
	transport := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Transporte"})

	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(100),
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		CategoryID: ag_uuid.UUID{UUID: food.ID},
	})
	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(50),
		Date:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		CategoryID: ag_uuid.UUID{UUID: transport.ID},
	})
	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(30),
		Date:       time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		CategoryID: ag_uuid.UUID{UUID: food.ID},
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{fmt.Sprintf("category=%s", food.ID), 2},
		{"from=2024-03-01&to=2024-03-31", 2},
		{"from=2024-04-01", 1},
		{"to=2024-03-10", 1},
		{"limit=2", 2},
		{"limit=2&offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "", auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesPagination() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	for i := 0; i < 3; i++ {
		_ = suite.createTestExpense(auth, v1.ExpenseEditable{
			Amount:     decimal.NewFromFloat(10),
			CategoryID: ag_uuid.UUID{UUID: category.ID},
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?limit=2", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	expense := suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(100),
		Note:       "Supermercado",
		CategoryID: ag_uuid.UUID{UUID: category.ID},
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), map[string]any{
		"amount": "250",
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(250)))
	assert.Equal(suite.T(), "Supermercado", response.Data.Note)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	expense := suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(100),
		CategoryID: ag_uuid.UUID{UUID: category.ID},
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// Recording an expense that pushes a budget over its threshold creates an
// in-app notification for the user.
func (suite *TestSuiteStandard) TestExpenseCreateTriggersAlert() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	_ = suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID:     ag_uuid.UUID{UUID: category.ID},
		Amount:         decimal.NewFromFloat(100000),
		AlertThreshold: 80,
	})

	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(90000),
		CategoryID: ag_uuid.UUID{UUID: category.ID},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Contains(suite.T(), response.Data[0].Message, "cerca de alcanzar el límite")
}
