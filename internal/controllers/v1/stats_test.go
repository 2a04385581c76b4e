package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/analizador-gastos/backend/internal/controllers/v1"
	ag_uuid "github.com/analizador-gastos/backend/internal/uuid"
	"github.com/analizador-gastos/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestStatsGet() {
	auth := suite.registerTestUser()
	food := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})
	transport := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Transporte"})

	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(100),
		Date:       time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
		CategoryID: ag_uuid.UUID{UUID: food.ID},
	})
	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(30),
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		CategoryID: ag_uuid.UUID{UUID: food.ID},
	})
	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(50),
		Date:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		CategoryID: ag_uuid.UUID{UUID: transport.ID},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats?from=2024-03-01&to=2024-03-31", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromFloat(80)), "unexpected total: %s", response.Data.Total)

	require.Len(suite.T(), response.Data.Categories, 2)
	for _, categorySum := range response.Data.Categories {
		switch categorySum.Name {
		case "Comida":
			assert.True(suite.T(), categorySum.Sum.Equal(decimal.NewFromFloat(30)))
		case "Transporte":
			assert.True(suite.T(), categorySum.Sum.Equal(decimal.NewFromFloat(50)))
		default:
			suite.Assert().Failf("unexpected category in statistics", "name: %s", categorySum.Name)
		}
	}

	require.Len(suite.T(), response.Data.Months, 1)
	assert.Equal(suite.T(), "2024-03", response.Data.Months[0].Month)
}

func (suite *TestSuiteStandard) TestStatsGetDefaults() {
	auth := suite.registerTestUser()
	category := suite.createTestCategory(auth, v1.CategoryEditable{Name: "Comida"})

	_ = suite.createTestExpense(auth, v1.ExpenseEditable{
		Amount:     decimal.NewFromFloat(25),
		Date:       time.Now(),
		CategoryID: ag_uuid.UUID{UUID: category.ID},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromFloat(25)), "unexpected total: %s", response.Data.Total)
	assert.Equal(suite.T(), time.Now().UTC().Month(), response.Data.From.Month())
}

func (suite *TestSuiteStandard) TestStatsGetEmpty() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.IsZero())
	assert.Len(suite.T(), response.Data.Categories, 0)
}
