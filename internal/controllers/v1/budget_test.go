package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/analizador-gastos/backend/internal/controllers/v1"
	"github.com/analizador-gastos/backend/internal/types"
	ag_uuid "github.com/analizador-gastos/backend/internal/uuid"
	"github.com/analizador-gastos/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	budget := suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: category.ID},
		Amount:     decimal.NewFromFloat(100000),
	})

	assert.Equal(suite.T(), category.ID, budget.CategoryID.UUID)
	assert.Equal(suite.T(), types.PeriodMonthly, budget.Period)
	assert.Equal(suite.T(), uint(80), budget.AlertThreshold)
}

func (suite *TestSuiteStandard) TestBudgetCreateDuplicate() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	editable := v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: category.ID},
		Amount:     decimal.NewFromFloat(100000),
		Period:     types.PeriodMonthly,
	}
	_ = suite.createTestBudget(auth, editable)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", editable, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)

	// The same category can carry a limit for a different period
	editable.Period = types.PeriodWeekly
	_ = suite.createTestBudget(auth, editable)
}

func (suite *TestSuiteStandard) TestBudgetCreateIncomeCategory() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Sueldo", Type: "income"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: category.ID},
		Amount:     decimal.NewFromFloat(100000),
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsGetFiltered() {
	auth := suite.registerTestUser()
	food := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})
	transport := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Transporte"})

	_ = suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: food.ID},
		Amount:     decimal.NewFromFloat(100000),
		Period:     types.PeriodMonthly,
	})
	_ = suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: food.ID},
		Amount:     decimal.NewFromFloat(25000),
		Period:     types.PeriodWeekly,
	})
	_ = suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: transport.ID},
		Amount:     decimal.NewFromFloat(40000),
		Period:     types.PeriodMonthly,
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{fmt.Sprintf("category=%s", food.ID), 2},
		{"period=monthly", 2},
		{fmt.Sprintf("category=%s&period=weekly", food.ID), 1},
		{"period=yearly", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "", auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetStatus() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	budget := suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID:     ag_uuid.UUID{UUID: category.ID},
		Amount:         decimal.NewFromFloat(100000),
		Period:         types.PeriodMonthly,
		AlertThreshold: 80,
	})

	for _, amount := range []float64{30000, 40000, 20000} {
		_ = suite.createTestExpense(auth, v1.ExpenseEditable{
			Amount:     decimal.NewFromFloat(amount),
			Date:       time.Now(),
			CategoryID: ag_uuid.UUID{UUID: category.ID},
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/status", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetStatusListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)

	status := response.Data[0]
	assert.Equal(suite.T(), budget.ID, status.BudgetID)
	assert.Equal(suite.T(), category.ID, status.CategoryID)
	assert.True(suite.T(), status.Spent.Equal(decimal.NewFromFloat(90000)), "unexpected spent: %s", status.Spent)
	assert.True(suite.T(), status.Percentage.Equal(decimal.NewFromFloat(90)), "unexpected percentage: %s", status.Percentage)
	assert.True(suite.T(), status.IsNearLimit)
	assert.False(suite.T(), status.IsOverLimit)
}

func (suite *TestSuiteStandard) TestBudgetStatusEmpty() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/status", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetStatusListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	budget := suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: category.ID},
		Amount:     decimal.NewFromFloat(100000),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), map[string]any{
		"amount":         "150000",
		"alertThreshold": 90,
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(150000)))
	assert.Equal(suite.T(), uint(90), response.Data.AlertThreshold)
	assert.Equal(suite.T(), types.PeriodMonthly, response.Data.Period)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	budget := suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: category.ID},
		Amount:     decimal.NewFromFloat(100000),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetOfOtherUserNotVisible() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})
	budget := suite.createTestBudget(auth, v1.BudgetEditable{
		CategoryID: ag_uuid.UUID{UUID: category.ID},
		Amount:     decimal.NewFromFloat(100000),
	})

	otherAuth := suite.registerTestUser()
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "", otherAuth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
