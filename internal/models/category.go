package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType distinguishes spending from income categories. Budgets can
// only be configured for expense categories.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a category that expenses are recorded against.
type Category struct {
	DefaultModel
	UserID uuid.UUID    `gorm:"uniqueIndex:category_user_name"`
	User   User         `json:"-"`
	Name   string       `gorm:"uniqueIndex:category_user_name"`
	Type   CategoryType `gorm:"default:expense"`
	Color  string
	Icon   string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Type == "" {
		c.Type = CategoryTypeExpense
	}

	if c.Type != CategoryTypeExpense && c.Type != CategoryTypeIncome {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// Expenses returns all expenses recorded against this category.
func (c Category) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.Where(&Expense{CategoryID: c.ID}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
