package models_test

import (
	"time"

	"github.com/analizador-gastos/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) seedStatsData() (models.User, models.Category, models.Category) {
	user := suite.createTestUser(models.User{})
	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Comida"})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transporte"})

	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: food.ID,
		Amount:     decimal.NewFromFloat(100),
		Date:       time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: food.ID,
		Amount:     decimal.NewFromFloat(30),
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: transport.ID,
		Amount:     decimal.NewFromFloat(50),
		Date:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	// Outside of the range used by the tests
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: food.ID,
		Amount:     decimal.NewFromFloat(999),
		Date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	return user, food, transport
}

func (suite *TestSuiteStandard) TestExpenseSum() {
	user, _, _ := suite.seedStatsData()

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	sum, err := models.ExpenseSum(models.DB, user.ID, from, to)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), sum.Equal(decimal.NewFromFloat(180)), "sum is %s, must be 180", sum)
}

func (suite *TestSuiteStandard) TestExpenseSumEmpty() {
	user := suite.createTestUser(models.User{})

	sum, err := models.ExpenseSum(models.DB, user.ID, time.Time{}, time.Now())
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), sum.IsZero(), "sum is %s, must be 0", sum)
}

func (suite *TestSuiteStandard) TestCategorySums() {
	user, food, transport := suite.seedStatsData()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	sums, err := models.CategorySums(models.DB, user.ID, from, to)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), sums, 2)

	for _, sum := range sums {
		switch sum.CategoryID {
		case food.ID:
			assert.Equal(suite.T(), "Comida", sum.Name)
			assert.True(suite.T(), sum.Sum.Equal(decimal.NewFromFloat(30)), "sum is %s, must be 30", sum.Sum)
		case transport.ID:
			assert.Equal(suite.T(), "Transporte", sum.Name)
			assert.True(suite.T(), sum.Sum.Equal(decimal.NewFromFloat(50)), "sum is %s, must be 50", sum.Sum)
		default:
			suite.Assert().Fail("unexpected category in sums", "%#v", sum)
		}
	}
}

func (suite *TestSuiteStandard) TestMonthSums() {
	user, _, _ := suite.seedStatsData()

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	sums, err := models.MonthSums(models.DB, user.ID, from, to)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), sums, 2)

	assert.Equal(suite.T(), "2024-02", sums[0].Month)
	assert.True(suite.T(), sums[0].Sum.Equal(decimal.NewFromFloat(100)), "sum is %s, must be 100", sums[0].Sum)

	assert.Equal(suite.T(), "2024-03", sums[1].Month)
	assert.True(suite.T(), sums[1].Sum.Equal(decimal.NewFromFloat(80)), "sum is %s, must be 80", sums[1].Sum)
}
