package models_test

import (
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{Name: " Comida "})

	assert.Equal(suite.T(), "Comida", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryTypeDefault() {
	category := suite.createTestCategory(models.Category{})

	assert.Equal(suite.T(), models.CategoryTypeExpense, category.Type)
}

func (suite *TestSuiteStandard) TestCategoryTypeInvalid() {
	user := suite.createTestUser(models.User{})

	category := models.Category{UserID: user.ID, Name: "Comida", Type: "savings"}
	err := models.DB.Create(&category).Error

	assert.ErrorIs(suite.T(), err, models.ErrCategoryTypeInvalid)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	category := suite.createTestCategory(models.Category{Name: "Comida"})

	duplicate := models.Category{UserID: category.UserID, Name: "Comida"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another user
	other := suite.createTestUser(models.User{})
	second := models.Category{UserID: other.ID, Name: "Comida"}
	err = models.DB.Create(&second).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryExpenses() {
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestExpense(models.Expense{
		UserID:     category.UserID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(10),
	})
	_ = suite.createTestExpense(models.Expense{
		UserID:     category.UserID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(20),
	})

	expenses, err := category.Expenses(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 2)
}
