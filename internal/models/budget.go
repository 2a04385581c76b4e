package models

import (
	"github.com/analizador-gastos/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending limit for one category over a recurring period.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID
	User       User            `json:"-"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:budget_category_period"`
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The spending limit
	Period     types.Period    `gorm:"uniqueIndex:budget_category_period;default:monthly"`
	// AlertThreshold is the percentage of the limit at which an alert fires.
	AlertThreshold uint `gorm:"default:80"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Budget)

	if tx.Statement.Changed("CategoryID") {
		err := b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists and is an
// expense category. Limits on income make no sense.
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	var category Category

	err := tx.First(&category, toSave.CategoryID).Error
	if err != nil {
		return err
	}

	if category.Type != CategoryTypeExpense {
		return ErrBudgetCategoryNotExpense
	}

	return nil
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.AlertThreshold == 0 {
		b.AlertThreshold = 80
	}

	if b.Period == "" {
		b.Period = types.PeriodMonthly
	}

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	if b.AlertThreshold < 1 || b.AlertThreshold > 100 {
		return ErrBudgetThresholdOutOfRange
	}

	if !b.Period.Valid() {
		return types.ErrInvalidPeriod
	}

	return nil
}

// BudgetsForUser returns a snapshot of all budgets of a user.
func BudgetsForUser(db *gorm.DB, userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget

	err := db.Where(&Budget{UserID: userID}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// CategoriesForUser returns a snapshot of all categories of a user.
func CategoriesForUser(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	var categories []Category

	err := db.Where(&Category{UserID: userID}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
